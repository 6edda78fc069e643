package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const dashboardFixture = `<html><body>
<img class="user-image" src="/photos/abebe.jpg">
<ul>
  <li>Full Name : Abebe Kebede Alemu</li>
  <li>ID Number : MU1234/13</li>
  <li>Admission Year : 2021</li>
  <li>Department: Computer Science</li>
  <li>Program: Undergraduate</li>
  <li>Class Year: 2</li>
  <li>Section: A</li>
</ul>
<ul>
  <li>First Name : Abebe</li>
  <li>Father Name : Kebede</li>
  <li>Grand father Name : Alemu</li>
  <li>ሙሉ ስም : አበበ ከበደ አለሙ</li>
  <li>Gender : Male</li>
  <li>Marital Status : Single</li>
  <li>Nationality: Ethiopian</li>
  <li>Ethnicity: Tigray</li>
  <li>Disability: None</li>
  <li>Date of birth: 2003-05-12</li>
  <li>Place of birth: Mekelle</li>
</ul>
<div id="contect_address">
  <p>Country: Ethiopia</p>
  <p>Region: Tigray</p>
  <p>Zone: Mekelle</p>
  <p>Woreda: Hadnet</p>
  <p>Kebele: 16</p>
  <p>Street address: Main St</p>
  <p>Home telephone: 034-441-0000</p>
  <p>Mobile: +251911223344</p>
  <p>Work telephone:</p>
  <p>Email: abebe@example.com</p>
</div>
<div id="emergency_contact">
  <p>Full name: Kebede Alemu</p>
  <p>Relationship: Father</p>
  <p>Home telephone: 034-441-0001</p>
  <p>Mobile: +251911000000</p>
  <p>Work telephone:</p>
</div>
<div id="family_background"><table><tbody>
  <tr><td>Kebede Alemu</td><td>Father</td><td>1965-01-01</td><td>Diploma</td><td>Farmer</td></tr>
  <tr><td>Almaz Haile</td><td>Mother</td><td>1970-03-15</td><td>Certificate</td><td>Teacher</td></tr>
</tbody></table></div>
<div id="educations"><table><tbody>
  <tr><td>Ayder Secondary</td><td>Secondary</td><td>Natural Science</td><td>Certificate</td><td>2016</td><td>2019</td><td>3.8</td><td>4</td></tr>
</tbody></table></div>
<div id="program_preference"><table><tbody>
  <tr><td>1</td><td>Computer Science (Undergraduate Regular)</td></tr>
  <tr><td>2</td><td>Software Engineering (Undergraduate Regular)</td></tr>
</tbody></table></div>
<select name="a[_v_]">
  <option></option>
  <option>2021/2022 Semester I</option>
  <option>2021/2022 Semester II</option>
</select>
<div id="costsharing"><table class="data-table">
  <tr><th>Semester</th><th>Education</th><th>Cafe</th><th>Accommodation</th><th>Total</th></tr>
  <tr><td>2021/2022 - I</td><td>1000</td><td>500</td><td>250</td><td>1750</td></tr>
  <tr><td>2021/2022 - II</td><td>1000</td><td>500</td><td>300</td><td>1800</td></tr>
</table></div>
<div id="gpasummary">
  <span class="academic-status">Promoted</span>
  <span class="semester-gpa">3.25</span>
  <span class="cumulative-gpa">3.10</span>
</div>
<div id="employment">
  <p>college: College of Natural and Computational Sciences</p>
  <p>Admission: Regular</p>
  <p>Registration Number: MU/1234/13</p>
  <p>Matriculation Result: 520</p>
  <p>Tuition type: Cost Sharing</p>
</div>
<table><tbody>
  <tr><td class="code">CS101</td><td class="title">Intro to Programming</td><td class="credit-hours">5</td></tr>
  <tr><td class="code">CS102</td><td class="title">Discrete Math</td><td class="credit-hours">7</td></tr>
</tbody></table>
<table><tbody>
  <tr><td class="course-code">CS101</td><td class="course-title">Intro to Programming</td><td class="letter-grade">A</td><td class="grade-points">4.0</td></tr>
</tbody></table>
<div class="schedule-item"><span class="day">Monday</span><span class="time">08:00</span><span class="course-name">CS101</span><span class="room">B-204</span></div>
<span class="account-balance">1200 ETB</span>
<table><tbody>
  <tr><td class="payment-date">2022-01-10</td><td class="payment-amount">1800</td><td class="payment-desc">Semester I</td></tr>
</tbody></table>
<div id="transcript"><table id="DataTable"><tbody>
  <tr class="semester_heading"><th colspan="7">Academic Year 2021/2022 1st Semester [ 2nd Year ]</th></tr>
  <tr><td>M-01</td><td>Computing</td><td>CS101</td><td>Intro to Programming</td><td>5</td><td>A</td><td>20</td></tr>
  <tr><td>M-01</td><td>Computing</td><td>CS102</td><td>Discrete Math</td><td>7</td><td>B+</td><td>24.5</td></tr>
</tbody></table></div>
</body></html>`

func TestGetStudentDataEndToEnd(t *testing.T) {
	portal := newPortalFixture(t, dashboardFixture)

	service, err := NewStudentDataService(portal.config())
	require.NoError(t, err)

	data, err := service.GetStudentData(context.Background(), LoginRequest{Username: "mu1234", Password: "secret"})
	require.NoError(t, err)

	require.Equal(t, "Abebe Kebede Alemu", data.PersonalInfo.StudentProfile.FullName)
	require.Equal(t, "MU1234/13", data.PersonalInfo.StudentProfile.IDNumber)
	require.Equal(t, "Abebe", data.PersonalInfo.PersonalDetails.FirstName)
	require.Equal(t, "አበበ ከበደ አለሙ", data.PersonalInfo.PersonalDetails.FullNameAmharic)
	require.Equal(t, "Ethiopia", data.PersonalInfo.ContactAddress.Country)
	require.Equal(t, "Kebede Alemu", data.PersonalInfo.EmergencyContact.FullName)
	require.Len(t, data.PersonalInfo.FamilyBackground, 2)
	require.Len(t, data.PersonalInfo.EducationBackground, 1)
	require.Equal(t, []string{"Computer Science", "Software Engineering"}, data.PersonalInfo.ProgramPreferences)
	require.Equal(t, []string{"2021/2022 Semester I", "2021/2022 Semester II"}, data.PersonalInfo.RegistrationHistory)
	require.Equal(t, 3550.0, data.PersonalInfo.CostSharing.Total)
	require.Equal(t, 3.25, data.PersonalInfo.GPASummary.SemesterGPA)
	require.Equal(t, 520.0, data.AcademicInfo.MatriculationResult)
	require.Equal(t, "Cost Sharing", data.AcademicInfo.TuitionType)

	// the aliased course/grade selectors both match the two course rows and
	// the one grade row
	require.Len(t, data.Courses, 3)
	require.Len(t, data.Grades, 3)
	require.Len(t, data.Schedule, 1)
	require.Equal(t, "1200 ETB", data.FinancialInfo.Balance)
	require.Len(t, data.FinancialInfo.PaymentHistory, 1)
	require.Len(t, data.Transcript.Entries, 2)
	require.Equal(t, "2021/2022", data.Transcript.Entries[0].AcademicYear)
}

func TestGetStudentDataUnauthorizedStopsBeforeDashboard(t *testing.T) {
	portal := newPortalFixture(t, dashboardFixture)

	service, err := NewStudentDataService(portal.config())
	require.NoError(t, err)

	_, err = service.GetStudentData(context.Background(), LoginRequest{Username: "mu1234", Password: "wrong"})

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, ErrorUnauthorized, appErr.Kind)
	// only the login probe touched the record page, no scrape happened
	require.Equal(t, 1, portal.recordHits)
}

func TestGetStudentDataDashboardFailure(t *testing.T) {
	portal := newPortalFixture(t, dashboardFixture)
	portal.failDashboard = true

	service, err := NewStudentDataService(portal.config())
	require.NoError(t, err)

	_, err = service.GetStudentData(context.Background(), LoginRequest{Username: "mu1234", Password: "secret"})

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, ErrorServiceUnavailable, appErr.Kind)
}

func TestGetStudentDataErrorStatusAfterLogin(t *testing.T) {
	for _, status := range []int{500, 503} {
		portal := newPortalFixture(t, dashboardFixture)
		portal.dashboardStatus = status

		service, err := NewStudentDataService(portal.config())
		require.NoError(t, err)

		data, err := service.GetStudentData(context.Background(), LoginRequest{Username: "mu1234", Password: "secret"})

		// a maintenance page must not pass for an empty student record
		require.Nil(t, data)
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, ErrorServiceUnavailable, appErr.Kind)
	}
}

func TestSessionsAreNotSharedBetweenServices(t *testing.T) {
	portal := newPortalFixture(t, dashboardFixture)
	cfg := portal.config()

	first, err := NewStudentDataService(cfg)
	require.NoError(t, err)
	second, err := NewStudentDataService(cfg)
	require.NoError(t, err)

	require.NotSame(t, first.client, second.client)
	require.NotSame(t, first.client.GetClient().Jar, second.client.GetClient().Jar)
}
