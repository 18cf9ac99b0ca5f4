// Command hbnbadmin runs maintenance tasks against the HBnB storage.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/config"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/repositories"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/services"
)

const commandTimeout = time.Minute

var (
	configPath string
	logger     *zap.SugaredLogger

	adminEmail     string
	adminPassword  string
	adminFirstName string
	adminLastName  string
)

var rootCmd = &cobra.Command{
	Use:           "hbnbadmin",
	Short:         "Maintenance commands for the HBnB API storage",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l.Sugar()
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations",
	Long: `Apply the embedded schema migrations for the configured database.

Migrations already recorded in schema_migrations are skipped, so the
command is safe to run repeatedly.`,
	RunE: runMigrate,
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator or promote an existing account",
	RunE:  runCreateAdmin,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/config.yaml", "path to the YAML config file")

	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "admin email (required)")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password (required)")
	createAdminCmd.Flags().StringVar(&adminFirstName, "first-name", "Admin", "admin first name")
	createAdminCmd.Flags().StringVar(&adminLastName, "last-name", "HBnB", "admin last name")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(migrateCmd, createAdminCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	cfg, err := config.LoadDatabaseConfig(configPath)
	if err != nil {
		return err
	}
	if !cfg.UsesSQL() {
		logger.Info("memory storage has no schema; nothing to migrate")
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	db, dialect, err := repositories.Open(ctx, cfg.Database.Driver, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	applied, err := repositories.Migrate(ctx, db, dialect)
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		logger.Info("schema is up to date")
		return nil
	}
	for _, name := range applied {
		logger.Infof("applied %s", name)
	}
	return nil
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	cfg, err := config.LoadDatabaseConfig(configPath)
	if err != nil {
		return err
	}
	if !cfg.UsesSQL() {
		return errors.New("create-admin needs a SQL database; memory storage does not outlive the process")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	store, db, err := repositories.OpenStore(ctx, cfg.Database.Driver, cfg.Database.URL,
		cfg.Database.MaxOpenConns, cfg.Database.AutoMigrate)
	if err != nil {
		return err
	}
	defer db.Close()

	// Only the user service is needed, so no session store or token manager.
	facade := services.NewFacade(store, nil, nil, services.Options{})
	user, created, err := facade.Users.EnsureAdmin(ctx, models.CreateUserRequest{
		Email:     adminEmail,
		Password:  adminPassword,
		FirstName: adminFirstName,
		LastName:  adminLastName,
	})
	if err != nil {
		return err
	}
	if created {
		logger.Infow("admin created", "id", user.ID, "email", user.Email)
	} else {
		logger.Infow("admin ensured", "id", user.ID, "email", user.Email)
	}
	return nil
}
