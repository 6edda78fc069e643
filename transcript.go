package main

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var semesterHeadingRe = regexp.MustCompile(
	`(?i)Academic Year (\d{4}/\d{4}) (\d+(?:st|nd|rd|th) Semester)\s*\[\s*(\d+(?:st|nd|rd|th) Year)\s*\]`,
)

// extractTranscript scans the transcript table top to bottom, carrying the
// academic-year/semester/year context set by interspersed heading rows.
// A heading whose text does not match the expected format leaves the
// current context untouched. Data rows are emitted only when both course
// code and course title are present.
func extractTranscript(doc *goquery.Document) Transcript {
	transcript := Transcript{
		Warning: strings.TrimSpace(doc.Find(".label-warning").Text()),
		Entries: []TranscriptEntry{},
	}

	var currentSemester, currentAcademicYear, currentYear string

	doc.Find("#transcript table#DataTable tbody tr").Each(func(i int, row *goquery.Selection) {
		if row.HasClass("semester_heading") {
			heading := cleanText(row.Find("th").Text())
			if groups := semesterHeadingRe.FindStringSubmatch(heading); groups != nil {
				currentAcademicYear = groups[1]
				currentSemester = groups[2]
				currentYear = groups[3]
			}
			return
		}

		// header and separator rows carry no data cells
		cells := row.Find("td")
		if row.Find("th").Length() > 0 || cells.Length() == 0 {
			return
		}

		entry := TranscriptEntry{
			ModuleCode:   cleanText(cells.Eq(0).Text()),
			ModuleTitle:  cleanText(cells.Eq(1).Text()),
			CourseCode:   cleanText(cells.Eq(2).Text()),
			CourseTitle:  cleanText(cells.Eq(3).Text()),
			ECTS:         parseFloatValue(cleanText(cells.Eq(4).Text())),
			Grade:        cleanText(cells.Eq(5).Text()),
			Points:       parseFloatValue(cleanText(cells.Eq(6).Text())),
			Semester:     currentSemester,
			AcademicYear: currentAcademicYear,
			Year:         currentYear,
		}
		if entry.CourseCode != "" && entry.CourseTitle != "" {
			transcript.Entries = append(transcript.Entries, entry)
		}
	})

	return transcript
}
