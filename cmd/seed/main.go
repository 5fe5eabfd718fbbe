package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/minhle/healthtrack/backend/config"
	"github.com/minhle/healthtrack/backend/internal/database"
	"github.com/minhle/healthtrack/backend/internal/models"
	"github.com/minhle/healthtrack/backend/internal/service"
)

// Seeds a demo account with a configurable window of generated history so
// the dashboard and alerts have something to show on a fresh install.
func main() {
	username := flag.String("username", "demo", "username for the seeded account")
	password := flag.String("password", "demo1234", "password for the seeded account")
	days := flag.Int("days", 30, "days of history to generate")
	trend := flag.String("trend", "stable", "weight trend: stable, loss or gain")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg, nil)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	user, err := ensureUser(db, *username, *password)
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	health := service.NewHealthService(db, nil)
	gen := newGenerator(65.0, *trend)

	var activities, sleeps int
	for i := 0; i < *days; i++ {
		date := time.Now().AddDate(0, 0, -(*days - i - 1)).Format(models.DateLayout)

		weight := gen.nextWeight()
		if _, err := health.AddWeightRecord(user.ID, weight, date, ""); err != nil {
			log.Fatalf("Failed to add weight for %s: %v", date, err)
		}

		// Most days have a workout, not all.
		if gen.rng.Float64() > 0.3 {
			activityType, duration := gen.nextActivity()
			if _, err := health.AddActivity(user.ID, activityType, duration, "", date, "", nil); err != nil {
				log.Fatalf("Failed to add activity for %s: %v", date, err)
			}
			activities++
		}

		hours, quality := gen.nextSleep()
		if _, err := health.AddSleepRecord(user.ID, hours, quality, date, ""); err != nil {
			log.Fatalf("Failed to add sleep for %s: %v", date, err)
		}
		sleeps++

		bpm := 58 + gen.rng.Intn(15)
		if _, err := health.AddHeartRateRecord(user.ID, bpm, models.HeartRateContextResting, date, "07:00", ""); err != nil {
			log.Fatalf("Failed to add heart rate for %s: %v", date, err)
		}
	}

	log.Printf("Seeded %q with %d days of history (%d activities, %d sleep records, trend=%s)",
		user.Username, *days, activities, sleeps, *trend)
}

func ensureUser(db *gorm.DB, username, password string) (*models.User, error) {
	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		log.Printf("User %q already exists, reusing", username)
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
		FullName:     "Người dùng Demo",
		HeightCm:     170.0,
		BirthDate:    "1995-06-15",
		Gender:       "Nam",
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type generator struct {
	rng        *rand.Rand
	lastWeight float64
	trend      string
}

func newGenerator(initialWeight float64, trend string) *generator {
	return &generator{
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		lastWeight: initialWeight,
		trend:      trend,
	}
}

// nextWeight drifts the weight according to the configured trend with a
// little noise, capped at 1 kg per day.
func (g *generator) nextWeight() float64 {
	var base float64
	switch g.trend {
	case "loss":
		base = g.uniform(-0.8, -0.1)
	case "gain":
		base = g.uniform(0.1, 0.8)
	default:
		base = g.uniform(-0.3, 0.3)
	}
	change := base + g.uniform(-0.2, 0.2)
	if change > 1.0 {
		change = 1.0
	} else if change < -1.0 {
		change = -1.0
	}

	g.lastWeight = float64(int((g.lastWeight+change)*10+0.5)) / 10
	return g.lastWeight
}

var activityWeights = []struct {
	name   string
	weight float64
}{
	{"Đi bộ", 0.3},
	{"Chạy bộ", 0.2},
	{"Đạp xe", 0.15},
	{"Bơi lội", 0.1},
	{"Gym", 0.1},
	{"Yoga", 0.08},
	{"Nhảy dây", 0.05},
	{"Leo cầu thang", 0.02},
}

func (g *generator) nextActivity() (string, int) {
	r := g.rng.Float64()
	name := activityWeights[len(activityWeights)-1].name
	for _, a := range activityWeights {
		if r < a.weight {
			name = a.name
			break
		}
		r -= a.weight
	}

	var duration int
	switch name {
	case "Chạy bộ", "Nhảy dây":
		duration = 15 + g.rng.Intn(31)
	case "Đi bộ", "Yoga":
		duration = 20 + g.rng.Intn(41)
	default:
		duration = 30 + g.rng.Intn(61)
	}
	return name, duration
}

func (g *generator) nextSleep() (float64, string) {
	hours := g.uniform(5.0, 9.0)
	quality := models.SleepQualities[g.rng.Intn(len(models.SleepQualities))]
	return float64(int(hours*10)) / 10, quality
}

func (g *generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
