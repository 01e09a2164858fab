package employee

import (
	"fmt"

	"github.com/hrops/hr-dashboard/internal/directory"
	"github.com/hrops/hr-dashboard/internal/seedrand"
)

// Employee is the canonical in-memory record every downstream consumer
// reads: part sourced from the directory, part synthesized from the
// identifier so repeat fetches reproduce the same profile.
type Employee struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Age       int        `json:"age"`
	Phone     string     `json:"phone"`
	Image     string     `json:"image"`
	Address   Address    `json:"address"`
	Company   Company    `json:"company"`
	Rating    int        `json:"rating"`
	Bio       string     `json:"bio,omitempty"`
	Projects  []Project  `json:"projects,omitempty"`
	Feedback  []Feedback `json:"feedback,omitempty"`
}

type Address struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type Company struct {
	Department string `json:"department"`
	Name       string `json:"name"`
	Title      string `json:"title"`
}

type Project struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Completion int    `json:"completion"`
}

const (
	ProjectStatusCompleted  = "completed"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusPending    = "pending"
)

type Feedback struct {
	ID       int64  `json:"id"`
	Reviewer string `json:"reviewer"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

// Departments is the canonical assignment pool. Department is derived
// from the identifier like every other synthesized field, so an
// employee keeps their department across reloads.
var Departments = []string{
	"Engineering",
	"Marketing",
	"Sales",
	"HR",
	"Finance",
	"Operations",
	"Design",
	"Product",
	"Legal",
	"Support",
}

const defaultCompanyName = "TechCorp Inc."
const defaultTitle = "Software Engineer"

var projectTemplates = []Project{
	{ID: 1, Name: "Website Redesign", Status: ProjectStatusCompleted, Completion: 100},
	{ID: 2, Name: "Mobile App Development", Status: ProjectStatusInProgress, Completion: 75},
	{ID: 3, Name: "Database Migration", Status: ProjectStatusPending, Completion: 0},
	{ID: 4, Name: "API Integration", Status: ProjectStatusInProgress, Completion: 60},
	{ID: 5, Name: "Security Audit", Status: ProjectStatusCompleted, Completion: 100},
}

var feedbackTemplates = []Feedback{
	{Reviewer: "John Manager", Rating: 5, Comment: "Excellent performance and leadership skills", Date: "2024-01-15"},
	{Reviewer: "Sarah Director", Rating: 4, Comment: "Great team player with strong technical skills", Date: "2024-01-10"},
	{Reviewer: "Mike Lead", Rating: 4, Comment: "Consistently delivers high-quality work", Date: "2024-01-05"},
	{Reviewer: "Lisa VP", Rating: 5, Comment: "Outstanding problem-solving abilities", Date: "2023-12-20"},
}

// FromRecord decorates one raw directory record with the synthesized
// profile fields. Pure in the identifier: same id, same profile.
func FromRecord(rec directory.UserRecord) Employee {
	companyName := rec.Company.Name
	if companyName == "" {
		companyName = defaultCompanyName
	}
	title := rec.Company.Title
	if title == "" {
		title = defaultTitle
	}

	return Employee{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Email:     rec.Email,
		Age:       rec.Age,
		Phone:     rec.Phone,
		Image:     rec.Image,
		Address: Address{
			Address:    rec.Address.Address,
			City:       rec.Address.City,
			State:      rec.Address.State,
			PostalCode: rec.Address.PostalCode,
			Country:    rec.Address.Country,
		},
		Company: Company{
			Department: SeededDepartment(rec.ID),
			Name:       companyName,
			Title:      title,
		},
		Rating:   seedrand.Rating(rec.ID),
		Bio:      seededBio(rec.ID),
		Projects: seededProjects(rec.ID),
		Feedback: seededFeedback(rec.ID),
	}
}

// SeededDepartment picks a stable department for an identifier.
func SeededDepartment(id int64) string {
	return Departments[seedrand.IntN(id, seedrand.SaltDepartment, len(Departments))]
}

func seededBio(id int64) string {
	years := seedrand.IntN(id, seedrand.SaltBioYears, 10) + 1
	dept := Departments[seedrand.IntN(id, seedrand.SaltBioDepartment, len(Departments))]
	return fmt.Sprintf("Experienced professional with %d years in %s. Passionate about innovation and team collaboration.", years, dept)
}

func seededProjects(id int64) []Project {
	n := seedrand.IntN(id, seedrand.SaltProjectCount, 3) + 1
	projects := make([]Project, n)
	copy(projects, projectTemplates[:n])
	return projects
}

func seededFeedback(id int64) []Feedback {
	n := seedrand.IntN(id, seedrand.SaltFeedbackCount, 3) + 1
	feedback := make([]Feedback, n)
	copy(feedback, feedbackTemplates[:n])
	for i := range feedback {
		feedback[i].ID = int64(i + 1)
	}
	return feedback
}

// IsKnownDepartment reports whether name is in the assignment pool.
func IsKnownDepartment(name string) bool {
	for _, d := range Departments {
		if d == name {
			return true
		}
	}
	return false
}
