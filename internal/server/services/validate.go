package services

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/gophstore/internal/common"
)

const (
	minPasswordLength = 6
	minGradYear       = 1950
	maxGradYear       = 2100
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorValidation, fmt.Sprintf(format, args...))
}

// RegisterInput is what a new account needs: credentials plus the initial
// profile document.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Degree   string
	GradYear int
}

func (in *RegisterInput) normalize() {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.Degree = strings.TrimSpace(in.Degree)
}

func (in RegisterInput) validate() error {
	if !emailRe.MatchString(in.Email) {
		return invalid("invalid email %q", in.Email)
	}
	if len(in.Password) < minPasswordLength {
		return invalid("password must be at least %d characters", minPasswordLength)
	}
	if in.Name == "" {
		return invalid("name is required")
	}
	if in.Degree == "" {
		return invalid("degree is required")
	}
	return validateGradYear(in.GradYear)
}

func validateGradYear(y int) error {
	if y < minGradYear || y > maxGradYear {
		return invalid("graduation year must be between %d and %d", minGradYear, maxGradYear)
	}
	return nil
}

func validateProduct(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return invalid("product name is required")
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return invalid("price must be a finite non-negative number")
	}
	return nil
}
