package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devhire/devhire/internal/model"
	"github.com/devhire/devhire/internal/store"
)

var (
	profileName       string
	profileEmail      string
	profileSkills     []string
	profileLocation   string
	profileRemoteOnly bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the local user profile",
	Long:  "The profile personalizes the board for this machine. There is no account or server; everything stays in the local store.",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the local profile",
	RunE:  runProfileSet,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the local profile",
	RunE:  runProfileShow,
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "display name")
	profileSetCmd.Flags().StringVar(&profileEmail, "email", "", "email address")
	profileSetCmd.Flags().StringSliceVar(&profileSkills, "skills", nil, "comma-separated skills")
	profileSetCmd.Flags().StringVar(&profileLocation, "location", "", "preferred location")
	profileSetCmd.Flags().BoolVar(&profileRemoteOnly, "remote-only", false, "only interested in remote roles")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	st, err := store.NewSQLiteStore(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// Start from the existing profile so partial updates work.
	user := model.User{}
	if existing, err := st.Profile(); err == nil && existing != nil {
		user = *existing
	}

	if cmd.Flags().Changed("name") {
		user.Name = profileName
	}
	if cmd.Flags().Changed("email") {
		user.Email = profileEmail
	}
	if cmd.Flags().Changed("skills") {
		user.Skills = profileSkills
	}
	if cmd.Flags().Changed("location") {
		user.Location = profileLocation
	}
	if cmd.Flags().Changed("remote-only") {
		user.RemoteOnly = profileRemoteOnly
	}

	if err := st.SetProfile(user); err != nil {
		return err
	}
	fmt.Println("profile updated")
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	st, err := store.NewSQLiteStore(cfg.StorePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	user, err := st.Profile()
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Println("no profile set (use `devhire profile set`)")
		return nil
	}

	fmt.Printf("name:        %s\n", user.Name)
	fmt.Printf("email:       %s\n", user.Email)
	fmt.Printf("skills:      %s\n", strings.Join(user.Skills, ", "))
	fmt.Printf("location:    %s\n", user.Location)
	fmt.Printf("remote only: %v\n", user.RemoteOnly)
	return nil
}
