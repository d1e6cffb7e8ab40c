package main

// Seed the starter legal templates:
//   go run ./cmd/seed

import (
	"context"
	"log"
	"os"

	"legaldraft-backend/internal/shared/config"
	"legaldraft-backend/internal/shared/storage/db"
	"legaldraft-backend/internal/templates"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	repo := &templates.PGRepo{DB: sqlDB}
	svc := templates.NewService(repo)

	existing, err := svc.List(ctx, "")
	if err != nil {
		log.Printf("failed to list templates: %v", err)
		os.Exit(1)
	}
	byName := make(map[string]bool, len(existing))
	for _, t := range existing {
		byName[t.Name] = true
	}

	for _, tpl := range seedTemplates() {
		if byName[tpl.Name] {
			log.Printf("template already exists: %s", tpl.Name)
			continue
		}
		created, err := svc.Create(ctx, tpl)
		if err != nil {
			log.Printf("failed to seed %s: %v", tpl.Name, err)
			os.Exit(1)
		}
		log.Printf("seeded template: %s (%s)", created.Name, created.ID)
	}
}

func seedTemplates() []templates.Template {
	fir := templates.Template{
		Name:        "FIR - Theft",
		Description: "Standard template for filing a theft FIR",
		Category:    "fir",
		Version:     "1.0.0",
		Fields: []templates.Field{
			{Name: "complainant_name", Label: "Complainant Name", Type: "text", Required: true, IsPII: true},
			{Name: "father_name", Label: "Father/Husband Name", Type: "text", Required: true, IsPII: true},
			{Name: "address", Label: "Address", Type: "textarea", Required: true, IsPII: true},
			{Name: "incident_date", Label: "Incident Date", Type: "date", Required: true},
			{Name: "incident_place", Label: "Incident Place", Type: "text", Required: true},
			{Name: "incident_details", Label: "Incident Details", Type: "textarea", Required: true},
		},
		Body: "FIRST INFORMATION REPORT\n\n" +
			"Date: {{today}}\n" +
			"To,\nThe Station House Officer\n" +
			"Subject: Report regarding theft incident\n\n" +
			"I, {{complainant_name}}, child of {{father_name}}, resident of {{address}},\n" +
			"wish to report that on {{incident_date}} at {{incident_place}}, the following incident occurred:\n" +
			"{{incident_details}}\n\n" +
			"I request you to kindly register this complaint and take the necessary legal action.\n\n" +
			"Sincerely,\n{{complainant_name}}",
	}

	notice := templates.Template{
		Name:        "Notice to Employer",
		Description: "Notice template to employer for pending dues or grievances",
		Category:    "notice",
		Version:     "1.0.0",
		Fields: []templates.Field{
			{Name: "employee_name", Label: "Employee Name", Type: "text", Required: true, IsPII: true},
			{Name: "employer_name", Label: "Employer Name", Type: "text", Required: true},
			{Name: "employment_start_date", Label: "Employment Start Date", Type: "date", Required: true},
			{Name: "issue_description", Label: "Issue Description", Type: "textarea", Required: true},
			{Name: "requested_action", Label: "Requested Action", Type: "textarea", Required: true},
		},
		Body: "FORMAL NOTICE\n\n" +
			"Date: {{today}}\n" +
			"To, {{employer_name}}\n\n" +
			"I, {{employee_name}}, employed since {{employment_start_date}}, wish to bring the following to your attention:\n" +
			"{{issue_description}}\n\n" +
			"I request that you take the following action within 7 days of receiving this notice:\n" +
			"{{requested_action}}\n\n" +
			"Sincerely,\n{{employee_name}}",
	}

	return []templates.Template{fir, notice}
}
