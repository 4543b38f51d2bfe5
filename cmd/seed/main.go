package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Aanjaneya24/me-api-playground/adapters/persistence"
	"github.com/Aanjaneya24/me-api-playground/internal/domain/profile"
	applogger "github.com/Aanjaneya24/me-api-playground/pkg/logger"
)

// Sample data (replace with your actual information).
var sampleInput = profile.CreateInput{
	Name:      "John Doe",
	Email:     "john.doe@example.com",
	Education: "B.Tech in Computer Science, XYZ University (2020-2024)",
	Skills: []string{
		"JavaScript",
		"Node.js",
		"Express.js",
		"Python",
		"SQL",
		"SQLite",
		"REST APIs",
		"Git",
		"HTML/CSS",
		"Problem Solving",
	},
	Projects: []profile.ProjectInput{
		{
			Title:       "E-commerce API",
			Description: "Built a RESTful API for an online store with user authentication, product management, and order processing",
			Link:        "https://github.com/yourusername/ecommerce-api",
		},
		{
			Title:       "Weather Dashboard",
			Description: "Created a weather forecasting application using third-party APIs with data visualization",
			Link:        "https://github.com/yourusername/weather-dashboard",
		},
		{
			Title:       "Task Manager",
			Description: "Developed a full-stack task management system with real-time updates and user collaboration features",
			Link:        "https://github.com/yourusername/task-manager",
		},
	},
	Work: []profile.WorkInput{
		{
			Company:     "Tech Startup Inc.",
			Position:    "Software Development Intern",
			Duration:    "Jun 2023 - Aug 2023",
			Description: "Worked on backend services, implemented REST APIs, and optimized database queries",
		},
		{
			Company:     "University Coding Club",
			Position:    "Technical Lead",
			Duration:    "Jan 2022 - May 2023",
			Description: "Led a team of 10 students, organized coding workshops, and mentored junior members",
		},
	},
	Links: &profile.LinksInput{
		Github:    "https://github.com/yourusername",
		Linkedin:  "https://linkedin.com/in/yourprofile",
		Portfolio: "https://yourportfolio.com",
	},
}

func main() {
	fmt.Println("seeding profile store with sample data...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "profile.db"
	}

	// Start from a clean file so reseeding is repeatable.
	if err := os.Remove(dbPath); err == nil {
		fmt.Println("removed existing database")
	} else if !os.IsNotExist(err) {
		log.Fatalf("cannot remove existing database: %v", err)
	}

	appLogger := applogger.NewZapLogger(os.Getenv("APP_ENV"))
	store, err := persistence.NewStore(dbPath, appLogger)
	if err != nil {
		log.Fatalf("cannot open profile store: %v", err)
	}
	defer store.Close()

	repo := persistence.NewProfileRepo(store, appLogger)
	profileID, err := repo.Create(context.Background(), sampleInput)
	if err != nil {
		log.Fatalf("cannot seed profile: %v", err)
	}

	fmt.Printf("seeded profile %d with %d skills, %d projects, %d work entries\n",
		profileID, len(sampleInput.Skills), len(sampleInput.Projects), len(sampleInput.Work))
}
