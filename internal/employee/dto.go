package employee

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/hrops/hr-dashboard/internal"
)

// contactEmailPattern is deliberately loose: anything shaped like
// something@something.something passes, matching the dashboard form.
var contactEmailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// The stock "email" rule is stricter than the form ever was.
	_ = v.RegisterValidation("contact_email", func(fl validator.FieldLevel) bool {
		return contactEmailPattern.MatchString(fl.Field().String())
	})
	return v
}

// CreateEmployeeDTO is the create-employee form payload. The address
// block and bio are optional, everything else is checked on submit.
type CreateEmployeeDTO struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email" validate:"required,contact_email"`
	Phone      string `json:"phone" validate:"required"`
	Age        int    `json:"age" validate:"required,gte=18,lte=100"`
	Department string `json:"department" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Bio        string `json:"bio,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Validate checks every field and reports all failures together, one
// message per field, instead of stopping at the first bad field.
func (dto CreateEmployeeDTO) Validate() error {
	var fields []internal.ValidationError

	if err := validate.Struct(dto); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				fields = append(fields, fieldError(ve))
			}
		} else {
			return internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
		}
	}

	if dto.Department != "" && !IsKnownDepartment(dto.Department) {
		fields = append(fields, internal.ValidationError{
			Field:   "department",
			Message: "Department is not recognized",
			Code:    string(internal.ErrCodeValidationFailed),
		})
	}

	if len(fields) > 0 {
		return internal.NewFieldValidationError(fields)
	}
	return nil
}

func fieldError(ve validator.FieldError) internal.ValidationError {
	var field, message string

	switch ve.StructField() {
	case "FirstName":
		field, message = "first_name", "First name is required"
	case "LastName":
		field, message = "last_name", "Last name is required"
	case "Email":
		field = "email"
		if ve.Tag() == "required" {
			message = "Email is required"
		} else {
			message = "Email is invalid"
		}
	case "Phone":
		field, message = "phone", "Phone is required"
	case "Age":
		field = "age"
		if ve.Tag() == "required" {
			message = "Age is required"
		} else {
			message = "Age must be between 18 and 100"
		}
	case "Department":
		field, message = "department", "Department is required"
	case "Title":
		field, message = "title", "Job title is required"
	default:
		field, message = ve.Field(), "Invalid value"
	}

	return internal.ValidationError{
		Field:   field,
		Message: message,
		Code:    string(internal.ErrCodeValidationFailed),
	}
}

// SubmitFeedbackDTO is the feedback form on the employee profile page.
type SubmitFeedbackDTO struct {
	Reviewer string `json:"reviewer" validate:"required"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment  string `json:"comment" validate:"required"`
}

func (dto SubmitFeedbackDTO) Validate() error {
	var fields []internal.ValidationError

	if err := validate.Struct(dto); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				switch ve.StructField() {
				case "Reviewer":
					fields = append(fields, internal.ValidationError{
						Field: "reviewer", Message: "Reviewer is required",
						Code: string(internal.ErrCodeValidationFailed),
					})
				case "Rating":
					fields = append(fields, internal.ValidationError{
						Field: "rating", Message: "Rating must be between 1 and 5",
						Code: string(internal.ErrCodeInvalidRating),
					})
				case "Comment":
					fields = append(fields, internal.ValidationError{
						Field: "comment", Message: "Comment is required",
						Code: string(internal.ErrCodeValidationFailed),
					})
				}
			}
		} else {
			return internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
		}
	}

	if len(fields) > 0 {
		return internal.NewFieldValidationError(fields)
	}
	return nil
}

// ListQuery carries the parsed query parameters of the list endpoint.
type ListQuery struct {
	Criteria Criteria
	Page     int
	PageSize int
}

// DefaultPageSize matches the dashboard's initial grid of six cards.
const DefaultPageSize = 6

// AllowedPageSizes are the page size options the pagination control offers.
var AllowedPageSizes = []int{6, 12, 24, 48}

func IsAllowedPageSize(size int) bool {
	for _, s := range AllowedPageSizes {
		if s == size {
			return true
		}
	}
	return false
}
