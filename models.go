package main

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required,max=100"`
	Password string `json:"password" form:"password" binding:"required,max=100"`
}

type StudentProfile struct {
	FullName      string `json:"full_name"`
	IDNumber      string `json:"id_number"`
	AdmissionYear string `json:"admission_year"`
	Department    string `json:"department"`
	Program       string `json:"program"`
	ClassYear     string `json:"class_year"`
	Section       string `json:"section"`
	Role          string `json:"role"`
	ProfileImage  string `json:"profile_image"`
}

type PersonalDetails struct {
	FirstName       string `json:"first_name"`
	FatherName      string `json:"father_name"`
	GrandFatherName string `json:"grand_father_name"`
	FullNameAmharic string `json:"full_name_amharic"`
	Gender          string `json:"gender"`
	MaritalStatus   string `json:"marital_status"`
	Nationality     string `json:"nationality"`
	Ethnicity       string `json:"ethnicity"`
	Disability      string `json:"disability"`
	DateOfBirth     string `json:"date_of_birth"`
	PlaceOfBirth    string `json:"place_of_birth"`
}

type ContactAddress struct {
	Country       string `json:"country"`
	Region        string `json:"region"`
	Zone          string `json:"zone"`
	Woreda        string `json:"woreda"`
	Kebele        string `json:"kebele"`
	StreetAddress string `json:"street_address"`
	HomeTelephone string `json:"home_telephone"`
	Mobile        string `json:"mobile"`
	WorkTelephone string `json:"work_telephone"`
	Email         string `json:"email"`
}

type EmergencyContact struct {
	FullName      string `json:"full_name"`
	Relationship  string `json:"relationship"`
	HomeTelephone string `json:"home_telephone"`
	Mobile        string `json:"mobile"`
	WorkTelephone string `json:"work_telephone"`
}

type FamilyMember struct {
	FullName       string `json:"full_name"`
	Relation       string `json:"relation"`
	DateOfBirth    string `json:"date_of_birth"`
	EducationLevel string `json:"education_level"`
	Occupation     string `json:"occupation"`
}

type Education struct {
	Institution   string  `json:"institution"`
	EducationType string  `json:"education_type"`
	StudyField    string  `json:"study_field"`
	Qualification string  `json:"qualification"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Grade         float64 `json:"grade"`
	Scale         float64 `json:"scale"`
}

type CostSharingBreakdown struct {
	Semester      string  `json:"semester"`
	Education     float64 `json:"education"`
	Cafe          float64 `json:"cafe"`
	Accommodation float64 `json:"accommodation"`
	Total         float64 `json:"total"`
}

type CostSharing struct {
	Total     float64                `json:"total"`
	Breakdown []CostSharingBreakdown `json:"breakdown"`
}

type GPASummary struct {
	AcademicStatus string  `json:"academic_status"`
	SemesterGPA    float64 `json:"semester_gpa"`
	CumulativeGPA  float64 `json:"cumulative_gpa"`
}

type AcademicInfo struct {
	College             string  `json:"college"`
	AdmissionType       string  `json:"admission_type"`
	RegistrationNumber  string  `json:"registration_number"`
	MatriculationResult float64 `json:"matriculation_result"`
	TuitionType         string  `json:"tuition_type"`
}

type Course struct {
	Code     string `json:"code,omitempty"`
	Title    string `json:"title,omitempty"`
	Credits  string `json:"credits,omitempty"`
	Grade    string `json:"grade,omitempty"`
	Semester string `json:"semester,omitempty"`
}

type Grade struct {
	CourseCode  string `json:"courseCode,omitempty"`
	CourseTitle string `json:"courseTitle,omitempty"`
	Grade       string `json:"grade,omitempty"`
	Points      string `json:"points,omitempty"`
	Semester    string `json:"semester,omitempty"`
}

type ScheduleEntry struct {
	Day        string `json:"day,omitempty"`
	Time       string `json:"time,omitempty"`
	Course     string `json:"course,omitempty"`
	Room       string `json:"room,omitempty"`
	Instructor string `json:"instructor,omitempty"`
}

type Payment struct {
	Date        string `json:"date,omitempty"`
	Amount      string `json:"amount,omitempty"`
	Description string `json:"description,omitempty"`
}

type FinancialInfo struct {
	Balance        string    `json:"balance,omitempty"`
	PaidAmount     string    `json:"paidAmount,omitempty"`
	DueAmount      string    `json:"dueAmount,omitempty"`
	PaymentHistory []Payment `json:"paymentHistory,omitempty"`
}

type TranscriptEntry struct {
	ModuleCode   string  `json:"moduleCode,omitempty"`
	ModuleTitle  string  `json:"moduleTitle,omitempty"`
	CourseCode   string  `json:"courseCode"`
	CourseTitle  string  `json:"courseTitle"`
	ECTS         float64 `json:"ects"`
	Grade        string  `json:"grade"`
	Points       float64 `json:"points"`
	Semester     string  `json:"semester"`
	AcademicYear string  `json:"academicYear"`
	Year         string  `json:"year"`
}

type Transcript struct {
	Warning string            `json:"warning,omitempty"`
	Entries []TranscriptEntry `json:"entries"`
}

type StudentPersonalInfo struct {
	StudentProfile      StudentProfile   `json:"student_profile"`
	PersonalDetails     PersonalDetails  `json:"personal_details"`
	ContactAddress      ContactAddress   `json:"contact_address"`
	EmergencyContact    EmergencyContact `json:"emergency_contact"`
	FamilyBackground    []FamilyMember   `json:"family_background"`
	EducationBackground []Education      `json:"education_background"`
	ProgramPreferences  []string         `json:"program_preferences"`
	RegistrationHistory []string         `json:"registration_history"`
	CostSharing         CostSharing      `json:"cost_sharing"`
	GPASummary          GPASummary       `json:"gpa_summary"`
	AcademicInfo        AcademicInfo     `json:"academic_info"`
}

type StudentData struct {
	PersonalInfo  StudentPersonalInfo `json:"personalInfo"`
	AcademicInfo  AcademicInfo        `json:"academicInfo"`
	Courses       []Course            `json:"courses"`
	Grades        []Grade             `json:"grades"`
	Schedule      []ScheduleEntry     `json:"schedule"`
	FinancialInfo FinancialInfo       `json:"financialInfo"`
	Transcript    Transcript          `json:"transcript"`
}
