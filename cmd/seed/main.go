package main

import (
	"context"
	"log"
	"time"

	"campusminds/config"
	"campusminds/database"
	counselorRepo "campusminds/database/repository/counselor"
	"campusminds/models"

	"github.com/google/uuid"
)

// seedCounselors is the demo counselor directory.
var seedCounselors = []models.Counselor{
	{
		Name:         "Dr. Ananya Singh",
		Specialty:    "Trauma Specialist",
		Bio:          "Helping students heal from past experiences with a gentle, patient-centered approach. Specialized in PTSD and emotional resilience.",
		Languages:    []string{"English", "Hindi"},
		Vibe:         "Gentle",
		SupportStyle: "gentle",
		Image:        "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?q=80&w=2070&auto=format&fit=crop",
	},
	{
		Name:         "Prof. Rajesh Kumar",
		Specialty:    "Academic Stress",
		Bio:          "No-nonsense guidance for high achievers. I help you manage deadlines, exam anxiety, and performance pressure efficiently.",
		Languages:    []string{"English", "Hindi", "Tamil"},
		Vibe:         "Direct",
		SupportStyle: "practical",
		Image:        "https://images.unsplash.com/photo-1537368910025-700350fe46c7?q=80&w=2070&auto=format&fit=crop",
	},
	{
		Name:         "Ms. Sarah Jones",
		Specialty:    "Social Anxiety",
		Bio:          "A warm space to navigate friendship, loneliness, and social fears. Let's build your confidence step by step.",
		Languages:    []string{"English"},
		Vibe:         "Empathetic",
		SupportStyle: "gentle",
		Image:        "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?q=80&w=1976&auto=format&fit=crop",
	},
	{
		Name:         "Dr. Vikas Khanna",
		Specialty:    "Mood Disorders",
		Bio:          "Bringing stability and calm to turbulent emotions. Expert in depression and bipolar management strategies.",
		Languages:    []string{"English", "Hindi", "Punjabi"},
		Vibe:         "Calm",
		SupportStyle: "clinical",
		Image:        "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?q=80&w=2070&auto=format&fit=crop",
	},
	{
		Name:         "Ms. Priya Iyer",
		Specialty:    "General Wellness",
		Bio:          "Practical tools for everyday balance. Focus on sleep, nutrition, and mindfulness to support your mental health.",
		Languages:    []string{"English", "Tamil", "Malayalam"},
		Vibe:         "Practical",
		SupportStyle: "practical",
		Image:        "https://images.unsplash.com/photo-1544005313-94ddf0286df2?q=80&w=1976&auto=format&fit=crop",
	},
}

func main() {
	config.LoadConfig()
	database.InitDB()

	repo := counselorRepo.NewMongoCounselorRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repo.DeleteAll(ctx); err != nil {
		log.Fatalf("Failed to clear counselors collection: %v", err)
	}
	log.Println("Cleared existing counselors")

	for i := range seedCounselors {
		c := seedCounselors[i]
		c.ID = uuid.New().String()
		if err := repo.Create(ctx, &c); err != nil {
			log.Fatalf("Failed to seed counselor %q: %v", c.Name, err)
		}
	}
	log.Printf("Seeded %d counselors", len(seedCounselors))
}
