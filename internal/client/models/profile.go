package models

type Profile struct {
	Name     string
	Degree   string
	GradYear int
	Email    string
}
