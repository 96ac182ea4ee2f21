// adminctl provisions administrator accounts out of band; the web API has
// no signup surface.
//
//	adminctl create --email admin@example.com --password secret --name Admin
//	adminctl reset-password --email admin@example.com --password newsecret
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/adith-pr/portfolio-backend/config"
	"github.com/adith-pr/portfolio-backend/database"
	"github.com/adith-pr/portfolio-backend/models"
)

// Matches the cost the original provisioning used.
const bcryptCost = 10

var (
	flagEmail    string
	flagPassword string
	flagName     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "adminctl",
		Short:         "Manage portfolio administrator accounts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an administrator account",
		RunE:  runCreate,
	}
	createCmd.Flags().StringVar(&flagEmail, "email", "", "admin email (falls back to ADMIN_EMAIL)")
	createCmd.Flags().StringVar(&flagPassword, "password", "", "admin password (falls back to ADMIN_PASSWORD)")
	createCmd.Flags().StringVar(&flagName, "name", "", "display name (falls back to ADMIN_NAME)")

	resetCmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Reset an administrator's password",
		RunE:  runResetPassword,
	}
	resetCmd.Flags().StringVar(&flagEmail, "email", "", "admin email (falls back to ADMIN_EMAIL)")
	resetCmd.Flags().StringVar(&flagPassword, "password", "", "new password (falls back to ADMIN_PASSWORD)")

	rootCmd.AddCommand(createCmd, resetCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runCreate(cmd *cobra.Command, args []string) error {
	email, password, err := resolveCredentials()
	if err != nil {
		return err
	}
	name := flagName
	if name == "" {
		name = os.Getenv("ADMIN_NAME")
	}
	if name == "" {
		name = "Admin"
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	admin := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}

	if err := database.New(db).AdminUserRepo().Add(admin); err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return fmt.Errorf("admin user %s already exists", email)
		}
		return fmt.Errorf("creating admin user: %w", err)
	}

	fmt.Println("Admin user created successfully!")
	fmt.Println("Email:", email)
	fmt.Println("Please change the password after first login")
	return nil
}

func runResetPassword(cmd *cobra.Command, args []string) error {
	email, password, err := resolveCredentials()
	if err != nil {
		return err
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if err := database.New(db).AdminUserRepo().UpdatePassword(email, string(hash)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("no admin user with email %s", email)
		}
		return fmt.Errorf("updating password: %w", err)
	}

	fmt.Println("Password updated for", email)
	return nil
}

func resolveCredentials() (email, password string, err error) {
	email = flagEmail
	if email == "" {
		email = os.Getenv("ADMIN_EMAIL")
	}
	password = flagPassword
	if password == "" {
		password = os.Getenv("ADMIN_PASSWORD")
	}

	if email == "" || password == "" {
		return "", "", errors.New("email and password are required (flags or ADMIN_EMAIL/ADMIN_PASSWORD)")
	}
	return email, password, nil
}

func openDatabase() (*gorm.DB, error) {
	godotenv.Load()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  config.DatabaseDSN(config.New()),
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}
