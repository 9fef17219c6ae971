package database

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"odishaconnect/backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedDistricts = []string{
	"Khordha", "Cuttack", "Puri", "Ganjam", "Sambalpur",
	"Balasore", "Mayurbhanj", "Sundargarh", "Kendrapara", "Koraput",
}

var seedInterests = [][]string{
	{"Odissi Dance", "Music"},
	{"Jagannath Culture", "Travel"},
	{"Pattachitra Art", "Photography"},
	{"Odia Literature", "Reading"},
	{"Cooking", "Movies"},
	{"Sand Art", "Nature"},
}

// SeedDemoData resets the database and populates it with demo profiles,
// connections and meetups for local development.
//
// Behavior:
//  1. Clears all domain tables.
//  2. Creates 20 users spread across districts plus one admin account,
//     all with the password "password".
//  3. Creates a handful of accepted connections with starter messages
//     and two upcoming public meetups.
func SeedDemoData(db *gorm.DB) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, table := range []string{"messages", "meetup_participants", "meetups", "reports", "verifications", "connections", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	var users []models.User
	for i := 1; i <= 20; i++ {
		gender := models.GenderMale
		lookingFor := models.LookingForFriendship
		if i%2 == 0 {
			gender = models.GenderFemale
		}
		switch i % 3 {
		case 1:
			lookingFor = models.LookingForDating
		case 2:
			lookingFor = models.LookingForCasual
		}

		district := seedDistricts[(i-1)%len(seedDistricts)]
		user := models.User{
			Name:         fmt.Sprintf("Demo User %d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			PasswordHash: string(hash),
			Age:          20 + r.Intn(15),
			Gender:       gender,
			District:     district,
			City:         district,
			Bio:          fmt.Sprintf("Demo profile from %s.", district),
			Interests:    models.StringList(seedInterests[(i-1)%len(seedInterests)]),
			Photos:       models.StringList(nil),
			LookingFor:   lookingFor,
			Language:     models.LanguageOdia,
			IsOnline:     i%4 != 0,
			LastSeen:     time.Now().Add(-time.Duration(r.Intn(72)) * time.Hour),
			SafetySettings: models.SafetySettings{
				ShareLocation:       false,
				AllowMessages:       true,
				RequireVerification: true,
			},
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
		users = append(users, user)
	}
	log.Println("Seeded 20 users.")

	admin := models.User{
		Name:         "Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Age:          30,
		Gender:       models.GenderOther,
		Role:         "admin",
		District:     "Khordha",
		City:         "Bhubaneswar",
		Bio:          "Moderation account.",
		Interests:    models.StringList(nil),
		Photos:       models.StringList(nil),
		LookingFor:   models.LookingForFriendship,
		Language:     models.LanguageEnglish,
		LastSeen:     time.Now(),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	for i := 0; i+1 < len(users); i += 4 {
		a, b := users[i], users[i+1]
		loID, hiID := models.CanonicalPair(a.ID, b.ID)
		conn := models.Connection{
			UserAID:        loID,
			UserBID:        hiID,
			Status:         models.ConnectionAccepted,
			InitiatedBy:    a.ID,
			ConnectionType: models.ConnectionTypeFriendship,
		}
		if err := db.Create(&conn).Error; err != nil {
			return fmt.Errorf("failed to seed connection: %w", err)
		}

		msg := models.Message{
			ConversationID: models.ConversationID(a.ID, b.ID),
			SenderID:       a.ID,
			ReceiverID:     b.ID,
			Content:        "Namaskar! Nice to connect.",
			MessageType:    models.MessageTypeText,
			Language:       models.LanguageEnglish,
		}
		if err := db.Create(&msg).Error; err != nil {
			return fmt.Errorf("failed to seed message: %w", err)
		}
	}
	log.Println("Seeded connections and messages.")

	meetups := []models.Meetup{
		{
			OrganizerID:     users[0].ID,
			Title:           "Konark Sunrise Walk",
			Description:     "Early morning walk around the Sun Temple followed by breakfast.",
			LocationName:    "Konark Sun Temple",
			Address:         "Konark, Puri district",
			Latitude:        19.8876,
			Longitude:       86.0945,
			DateTime:        time.Now().Add(7 * 24 * time.Hour),
			MaxParticipants: 12,
			Category:        models.MeetupCultural,
			IsPublic:        true,
			Participants:    []*models.User{&users[0]},
		},
		{
			OrganizerID:     users[1].ID,
			Title:           "Bhubaneswar Street Food Crawl",
			Description:     "Dahibara aloodum trail through the old town.",
			LocationName:    "Old Town",
			Address:         "Bhubaneswar, Khordha district",
			Latitude:        20.2376,
			Longitude:       85.8342,
			DateTime:        time.Now().Add(3 * 24 * time.Hour),
			MaxParticipants: 8,
			Category:        models.MeetupFood,
			IsPublic:        true,
			Participants:    []*models.User{&users[1]},
		},
	}
	for i := range meetups {
		if err := db.Create(&meetups[i]).Error; err != nil {
			return fmt.Errorf("failed to seed meetup: %w", err)
		}
	}
	log.Println("Seeded meetups.")

	return nil
}
