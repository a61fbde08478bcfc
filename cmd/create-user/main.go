package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/certlab/certquiz-backend/internal/config"
	"github.com/certlab/certquiz-backend/internal/database"
	"github.com/certlab/certquiz-backend/internal/logger"
	"github.com/certlab/certquiz-backend/internal/model"
	"github.com/certlab/certquiz-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New User ===")

	// Name
	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 8 {
		fmt.Println("Error: Password must be at least 8 characters")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	err = userRepo.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// Accounts created implicitly by a result submission have no
		// password. Claim such an account instead of failing.
		existing, getErr := userRepo.GetByEmail(ctx, email)
		if getErr != nil {
			log.Fatal().Err(getErr).Msg("Failed to look up existing user")
		}
		if existing.PasswordHash != "" {
			fmt.Println("Error: A user with this email already exists")
			return
		}
		if setErr := userRepo.SetPassword(ctx, existing.ID, string(hashedPassword)); setErr != nil {
			log.Fatal().Err(setErr).Msg("Failed to set password")
		}
		fmt.Printf("Claimed existing account %q (ID %d) and set its password\n", email, existing.ID)
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create user")
	}

	fmt.Printf("User %q created with ID %d\n", email, user.ID)
}
