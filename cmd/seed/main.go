package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"barbershop/internal/app"
	"barbershop/internal/config"
	"barbershop/internal/database"
	"barbershop/internal/domain/booking"
	"barbershop/internal/domain/branch"
	"barbershop/internal/domain/user"
	"barbershop/internal/pkg/jwt"
	"barbershop/internal/pkg/logger"
)

type seedBranch struct {
	name      string
	phone     string
	address   string
	latitude  float64
	longitude float64
}

var branches = []seedBranch{
	{"Barber Club Abay", "+7 727 300 10 01", "Almaty, Abay ave 52", 43.2407, 76.9286},
	{"Barber Club Dostyk", "+7 727 300 10 02", "Almaty, Dostyk ave 134", 43.2265, 76.9578},
	{"Barber Club Esentai", "+7 727 300 10 03", "Almaty, Al-Farabi ave 77/8", 43.2181, 76.9276},
	{"Barber Club Astana", "+7 717 255 20 01", "Astana, Kabanbay Batyr ave 21", 51.1282, 71.4307},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if config.IsProdLike(cfg.AppEnv) {
		log.Fatal("refusing to seed a prod-like environment")
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, zl)
	if err != nil {
		zl.Fatal("DB connection failed", zap.Error(err))
	}
	if err := app.Migrate(db); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	zl.Info("cleaning old data")
	for _, table := range []string{"notifications", "reviews", "favorites", "bookings", "branches", "addresses", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			zl.Fatal("cleanup failed", zap.String("table", table), zap.Error(err))
		}
	}

	ctx := context.Background()
	users := user.NewRepository(db)
	tokens := jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	// ================== USERS ==================
	owner := mustUser(ctx, users, "owner@barbershop.kz", "owner123", user.RoleOwner, "Owner")

	var staff []*user.User
	for i, name := range []string{"Arman", "Dias", "Timur"} {
		staff = append(staff, mustUser(ctx, users, fmt.Sprintf("barber%d@barbershop.kz", i+1), "staff123", user.RoleStaff, name))
	}

	var clients []*user.User
	for i, email := range []string{"asel@mail.kz", "bekzat@gmail.com", "dina@yandex.kz"} {
		clients = append(clients, mustUser(ctx, users, email, "client123", user.RoleClient, fmt.Sprintf("Client %d", i+1)))
	}

	// ================== BRANCHES ==================
	branchRepo := branch.NewRepository(db)
	for _, sb := range branches {
		addr := &branch.Address{Latitude: sb.latitude, Longitude: sb.longitude, FullAddress: sb.address}
		if err := branchRepo.CreateAddress(ctx, addr); err != nil {
			zl.Fatal("create address failed", zap.Error(err))
		}
		if err := branchRepo.Create(ctx, &branch.Branch{Name: sb.name, PhoneNumber: sb.phone, AddressID: addr.ID}); err != nil {
			zl.Fatal("create branch failed", zap.Error(err))
		}
	}

	// ================== BOOKINGS ==================
	bookings := booking.NewRepository(db)
	statuses := []string{booking.StatusPending, booking.StatusConfirmed, booking.StatusCompleted, booking.StatusCancelled}
	day := time.Now().Truncate(24 * time.Hour)
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	created := 0
	for i := 0; i < 20; i++ {
		duration := 30 + 15*rnd.Intn(4)
		start := day.AddDate(0, 0, rnd.Intn(14)-7).Add(time.Duration(9+rnd.Intn(10)) * time.Hour)
		b := &booking.Booking{
			Status:        statuses[rnd.Intn(len(statuses))],
			StartAt:       start,
			EndAt:         start.Add(time.Duration(duration) * time.Minute),
			TotalDuration: duration,
			TotalPrice:    float64(duration) * 150,
			ClientID:      clients[rnd.Intn(len(clients))].ID,
			StaffID:       staff[rnd.Intn(len(staff))].ID,
		}
		if err := bookings.Create(ctx, b); err != nil {
			zl.Fatal("create booking failed", zap.Error(err))
		}
		created++
	}

	zl.Info("seed completed",
		zap.Int("branches", len(branches)),
		zap.Int("staff", len(staff)),
		zap.Int("clients", len(clients)),
		zap.Int("bookings", created),
	)

	// Dev tokens so the API can be exercised without a login flow.
	for _, u := range append([]*user.User{owner, staff[0]}, clients[0]) {
		tok, err := tokens.GenerateToken(u.ID, string(u.Role))
		if err != nil {
			zl.Fatal("token generation failed", zap.Error(err))
		}
		fmt.Printf("%-7s id=%-3d %s\n", u.Role, u.ID, tok)
	}
}

func mustUser(ctx context.Context, repo *user.GormRepository, email, password string, role user.Role, name string) *user.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	u := &user.User{Email: email, PasswordHash: string(hash), Role: role, Name: name}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatalf("create user %s: %v", email, err)
	}
	return u
}
