package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// StudentDataService runs one login-and-scrape pipeline. Construct a fresh
// instance per request: the portal session lives in the client's cookie jar
// and must not leak between users.
type StudentDataService struct {
	client *resty.Client
	auth   *authenticator
	logger *slog.Logger
}

func NewStudentDataService(cfg Config) (*StudentDataService, error) {
	client, err := newPortalClient(cfg)
	if err != nil {
		return nil, err
	}
	return &StudentDataService{
		client: client,
		auth:   &authenticator{client: client},
		logger: slog.With("component", "StudentDataService"),
	}, nil
}

// GetStudentData logs into the portal and assembles the full student record
// from a single fetch of the student record page.
func (s *StudentDataService) GetStudentData(ctx context.Context, credentials LoginRequest) (*StudentData, error) {
	s.logger.Info("starting student data extraction", "username", credentials.Username)

	if err := s.auth.login(ctx, credentials); err != nil {
		s.logger.Error("failed to get student data", "username", credentials.Username, "err", err)
		return nil, err
	}

	s.logger.Info("login successful, scraping dashboard data")

	data, err := s.scrapeDashboard(ctx)
	if err != nil {
		s.logger.Error("failed to get student data", "username", credentials.Username, "err", err)
		return nil, err
	}

	s.logger.Info("successfully extracted student data",
		"username", credentials.Username,
		"has_full_name", data.PersonalInfo.StudentProfile.FullName != "",
		"courses", len(data.Courses),
		"grades", len(data.Grades),
	)
	return data, nil
}

func (s *StudentDataService) scrapeDashboard(ctx context.Context) (*StudentData, error) {
	res, err := s.client.R().
		SetContext(ctx).
		Get(studentRecordPath)
	if err != nil {
		return nil, serviceUnavailableError("Failed to scrape dashboard data", err)
	}
	// the client does not reject error statuses itself, and an outage page
	// would otherwise parse as an empty record
	if res.StatusCode() != http.StatusOK {
		return nil, serviceUnavailableError("Failed to scrape dashboard data",
			fmt.Errorf("student record page returned status %d", res.StatusCode()))
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, serviceUnavailableError("Failed to scrape dashboard data", err)
	}

	// every extractor reads the parsed document without mutating it, so
	// their order is irrelevant
	data := &StudentData{
		PersonalInfo: StudentPersonalInfo{
			StudentProfile:      extractStudentProfile(doc),
			PersonalDetails:     extractPersonalDetails(doc),
			ContactAddress:      extractContactAddress(doc),
			EmergencyContact:    extractEmergencyContact(doc),
			FamilyBackground:    extractFamilyBackground(doc),
			EducationBackground: extractEducationBackground(doc),
			ProgramPreferences:  extractProgramPreferences(doc),
			RegistrationHistory: extractRegistrationHistory(doc),
			CostSharing:         extractCostSharing(doc),
			GPASummary:          extractGPASummary(doc),
			AcademicInfo:        extractAcademicInfo(doc),
		},
		AcademicInfo:  extractAcademicInfo(doc),
		Courses:       extractCourses(doc),
		Grades:        extractGrades(doc),
		Schedule:      extractSchedule(doc),
		FinancialInfo: extractFinancialInfo(doc),
		Transcript:    extractTranscript(doc),
	}
	return data, nil
}
