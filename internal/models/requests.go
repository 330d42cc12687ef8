package models

import "strings"

type CreateRecruitRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Stage    string `json:"stage"`
	Notes    string `json:"notes"`
	Source   string `json:"source"`
	Priority int    `json:"priority"`
}

func (r *CreateRecruitRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return nil
}

type UpdateRecruitRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Stage    string `json:"stage"`
	Notes    string `json:"notes"`
	Priority *int   `json:"priority"`
}

func (r *UpdateRecruitRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	return nil
}

type MarkContactRequest struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type QuickMessageRequest struct {
	RecruitID  int    `json:"recruitId"`
	TemplateID *int   `json:"templateId"`
	Message    string `json:"message"`
}
