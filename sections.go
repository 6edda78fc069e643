package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var leadingNumberRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

// parseFloatValue reads the leading numeric portion of a scraped cell,
// tolerating trailing units or junk. Empty or unparsable cells yield 0.
func parseFloatValue(text string) float64 {
	match := leadingNumberRe.FindString(strings.TrimSpace(text))
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return value
}

func extractStudentProfile(doc *goquery.Document) StudentProfile {
	return StudentProfile{
		FullName:      extractFieldText(doc, `li:contains("Full Name")`, "Full Name :"),
		IDNumber:      extractFieldText(doc, `li:contains("ID Number")`, "ID Number :"),
		AdmissionYear: extractFieldText(doc, `li:contains("Admission Year")`, "Admission Year :"),
		Department:    extractFieldText(doc, `li:contains("Department")`, "Department:"),
		Program:       extractFieldText(doc, `li:contains("Program")`, "Program:"),
		ClassYear:     extractFieldText(doc, `li:contains("Class Year")`, "Class Year:"),
		Section:       extractFieldText(doc, `li:contains("Section")`, "Section:"),
		Role:          "student",
		ProfileImage:  doc.Find("img.user-image").AttrOr("src", ""),
	}
}

func extractPersonalDetails(doc *goquery.Document) PersonalDetails {
	return PersonalDetails{
		FirstName:       extractFieldText(doc, `li:contains("First Name")`, "First Name :"),
		FatherName:      extractFieldText(doc, `li:contains("Father Name")`, "Father Name :"),
		GrandFatherName: extractFieldText(doc, `li:contains("Grand father Name")`, "Grand father Name :"),
		FullNameAmharic: extractFieldText(doc, `li:contains("ሙሉ ስም")`, "ሙሉ ስም :"),
		Gender:          extractFieldText(doc, `li:contains("Gender")`, "Gender :"),
		MaritalStatus:   extractFieldText(doc, `li:contains("Marital Status")`, "Marital Status :"),
		Nationality:     extractFieldText(doc, `li:contains("Nationality")`, "Nationality:"),
		Ethnicity:       extractFieldText(doc, `li:contains("Ethnicity")`, "Ethnicity:"),
		Disability:      extractFieldText(doc, `li:contains("Disability")`, "Disability:"),
		DateOfBirth:     extractFieldText(doc, `li:contains("Date of birth")`, "Date of birth:"),
		PlaceOfBirth:    extractFieldText(doc, `li:contains("Place of birth")`, "Place of birth:"),
	}
}

func extractContactAddress(doc *goquery.Document) ContactAddress {
	return ContactAddress{
		Country:       extractFieldText(doc, `#contect_address p:contains("Country")`, "Country:"),
		Region:        extractFieldText(doc, `#contect_address p:contains("Region")`, "Region:"),
		Zone:          extractFieldText(doc, `#contect_address p:contains("Zone")`, "Zone:"),
		Woreda:        extractFieldText(doc, `#contect_address p:contains("Woreda")`, "Woreda:"),
		Kebele:        extractFieldText(doc, `#contect_address p:contains("Kebele")`, "Kebele:"),
		StreetAddress: extractFieldText(doc, `#contect_address p:contains("Street address")`, "Street address:"),
		HomeTelephone: extractFieldText(doc, `#contect_address p:contains("Home telephone")`, "Home telephone:"),
		Mobile:        extractFieldText(doc, `#contect_address p:contains("Mobile")`, "Mobile:"),
		WorkTelephone: extractFieldText(doc, `#contect_address p:contains("Work telephone")`, "Work telephone:"),
		Email:         extractFieldText(doc, `#contect_address p:contains("Email")`, "Email:"),
	}
}

func extractEmergencyContact(doc *goquery.Document) EmergencyContact {
	return EmergencyContact{
		FullName:      extractFieldText(doc, `#emergency_contact p:contains("Full name")`, "Full name:"),
		Relationship:  extractFieldText(doc, `#emergency_contact p:contains("Relationship")`, "Relationship:"),
		HomeTelephone: extractFieldText(doc, `#emergency_contact p:contains("Home telephone")`, "Home telephone:"),
		Mobile:        extractFieldText(doc, `#emergency_contact p:contains("Mobile")`, "Mobile:"),
		WorkTelephone: extractFieldText(doc, `#emergency_contact p:contains("Work telephone")`, "Work telephone:"),
	}
}

func extractFamilyBackground(doc *goquery.Document) []FamilyMember {
	family := []FamilyMember{}
	doc.Find("#family_background table tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		family = append(family, FamilyMember{
			FullName:       cleanText(cells.Eq(0).Text()),
			Relation:       cleanText(cells.Eq(1).Text()),
			DateOfBirth:    cleanText(cells.Eq(2).Text()),
			EducationLevel: cleanText(cells.Eq(3).Text()),
			Occupation:     cleanText(cells.Eq(4).Text()),
		})
	})
	return family
}

func extractEducationBackground(doc *goquery.Document) []Education {
	educations := []Education{}
	doc.Find("#educations table tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		educations = append(educations, Education{
			Institution:   cleanText(cells.Eq(0).Text()),
			EducationType: cleanText(cells.Eq(1).Text()),
			StudyField:    cleanText(cells.Eq(2).Text()),
			Qualification: cleanText(cells.Eq(3).Text()),
			From:          cleanText(cells.Eq(4).Text()),
			To:            cleanText(cells.Eq(5).Text()),
			Grade:         parseFloatValue(cleanText(cells.Eq(6).Text())),
			Scale:         parseFloatValue(cleanText(cells.Eq(7).Text())),
		})
	})
	return educations
}

func extractProgramPreferences(doc *goquery.Document) []string {
	preferences := []string{}
	doc.Find("#program_preference table tbody tr").Each(func(i int, row *goquery.Selection) {
		program := cleanText(row.Find("td").Eq(1).Text())
		program = strings.TrimSpace(strings.ReplaceAll(program, "(Undergraduate Regular)", ""))
		preferences = append(preferences, program)
	})
	return preferences
}

func extractRegistrationHistory(doc *goquery.Document) []string {
	history := []string{}
	doc.Find(`select[name="a[_v_]"] option`).Each(func(i int, option *goquery.Selection) {
		if text := strings.TrimSpace(option.Text()); text != "" {
			history = append(history, cleanText(text))
		}
	})
	return history
}

// extractCostSharing keeps a running total over the breakdown rows it
// accepts. Rows without a semester label are dropped entirely so they
// contribute to neither the breakdown nor the total.
func extractCostSharing(doc *goquery.Document) CostSharing {
	costSharing := CostSharing{Breakdown: []CostSharingBreakdown{}}
	doc.Find("#costsharing table.data-table tr:not(:first-child)").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		semester := cleanText(cells.Eq(0).Text())
		if semester == "" {
			return
		}
		entry := CostSharingBreakdown{
			Semester:      semester,
			Education:     parseFloatValue(cleanText(cells.Eq(1).Text())),
			Cafe:          parseFloatValue(cleanText(cells.Eq(2).Text())),
			Accommodation: parseFloatValue(cleanText(cells.Eq(3).Text())),
			Total:         parseFloatValue(cleanText(cells.Eq(4).Text())),
		}
		costSharing.Breakdown = append(costSharing.Breakdown, entry)
		costSharing.Total += entry.Total
	})
	return costSharing
}

func extractGPASummary(doc *goquery.Document) GPASummary {
	status := cleanText(doc.Find("#gpasummary .academic-status").Text())
	if status == "" {
		status = "Promoted"
	}
	return GPASummary{
		AcademicStatus: status,
		SemesterGPA:    parseFloatValue(cleanText(doc.Find("#gpasummary .semester-gpa").Text())),
		CumulativeGPA:  parseFloatValue(cleanText(doc.Find("#gpasummary .cumulative-gpa").Text())),
	}
}

func extractAcademicInfo(doc *goquery.Document) AcademicInfo {
	return AcademicInfo{
		College:            extractFieldText(doc, `#employment p:contains("college:")`, "college:"),
		AdmissionType:      extractFieldText(doc, `#employment p:contains("Admission:")`, "Admission:"),
		RegistrationNumber: extractFieldText(doc, `#employment p:contains("Registration Number:")`, "Registration Number:"),
		MatriculationResult: parseFloatValue(
			extractFieldText(doc, `#employment p:contains("Matriculation Result:")`, "Matriculation Result:"),
		),
		TuitionType: extractFieldText(doc, `#employment p:contains("Tuition type:")`, "Tuition type:"),
	}
}

// The collection sections below match a union of class-name aliases plus
// generic table rows, since the portal renders them with several templates.
// Each union runs as a single grouped selector, so an element is visited at
// most once per section. An entry is kept only when an anchor field is
// non-empty.

func extractCourses(doc *goquery.Document) []Course {
	courses := []Course{}
	doc.Find(".course, .course-item, tr").Each(func(i int, el *goquery.Selection) {
		course := Course{
			Code:     strings.TrimSpace(el.Find(".course-code, .code").Text()),
			Title:    strings.TrimSpace(el.Find(".course-title, .title").Text()),
			Credits:  strings.TrimSpace(el.Find(".credits, .credit-hours").Text()),
			Grade:    strings.TrimSpace(el.Find(".grade, .letter-grade").Text()),
			Semester: strings.TrimSpace(el.Find(".semester, .term").Text()),
		}
		if course.Code != "" || course.Title != "" {
			courses = append(courses, course)
		}
	})
	return courses
}

func extractGrades(doc *goquery.Document) []Grade {
	grades := []Grade{}
	doc.Find(".grade-item, .grade-row, tr").Each(func(i int, el *goquery.Selection) {
		grade := Grade{
			CourseCode:  strings.TrimSpace(el.Find(".course-code, .code").Text()),
			CourseTitle: strings.TrimSpace(el.Find(".course-title, .title").Text()),
			Grade:       strings.TrimSpace(el.Find(".grade, .letter-grade").Text()),
			Points:      strings.TrimSpace(el.Find(".points, .grade-points").Text()),
			Semester:    strings.TrimSpace(el.Find(".semester, .term").Text()),
		}
		if grade.CourseCode != "" || grade.CourseTitle != "" {
			grades = append(grades, grade)
		}
	})
	return grades
}

func extractSchedule(doc *goquery.Document) []ScheduleEntry {
	schedule := []ScheduleEntry{}
	doc.Find(".schedule-item, .class-schedule, tr").Each(func(i int, el *goquery.Selection) {
		entry := ScheduleEntry{
			Day:        strings.TrimSpace(el.Find(".day, .weekday").Text()),
			Time:       strings.TrimSpace(el.Find(".time, .class-time").Text()),
			Course:     strings.TrimSpace(el.Find(".course, .course-name").Text()),
			Room:       strings.TrimSpace(el.Find(".room, .classroom").Text()),
			Instructor: strings.TrimSpace(el.Find(".instructor, .professor").Text()),
		}
		if entry.Day != "" || entry.Time != "" || entry.Course != "" {
			schedule = append(schedule, entry)
		}
	})
	return schedule
}

func extractFinancialInfo(doc *goquery.Document) FinancialInfo {
	info := FinancialInfo{
		Balance:    strings.TrimSpace(doc.Find(".balance, .account-balance").Text()),
		PaidAmount: strings.TrimSpace(doc.Find(".paid-amount, .total-paid").Text()),
		DueAmount:  strings.TrimSpace(doc.Find(".due-amount, .amount-due").Text()),
	}
	doc.Find(".payment-item, .payment-history, tr").Each(func(i int, el *goquery.Selection) {
		payment := Payment{
			Date:        strings.TrimSpace(el.Find(".date, .payment-date").Text()),
			Amount:      strings.TrimSpace(el.Find(".amount, .payment-amount").Text()),
			Description: strings.TrimSpace(el.Find(".description, .payment-desc").Text()),
		}
		if payment.Date != "" || payment.Amount != "" {
			info.PaymentHistory = append(info.PaymentHistory, payment)
		}
	})
	return info
}
