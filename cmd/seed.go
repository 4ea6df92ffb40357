package cmd

import (
	"fmt"

	"github.com/Govind-619/CorpSite/config"
	"github.com/Govind-619/CorpSite/services"

	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace site content with sample data",
		Long: `Clear the company, services, team, testimonials, careers and blog tables
and insert sample records. Payment orders and webhook events are left alone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			if err := config.Migrate(db); err != nil {
				return err
			}

			report, err := services.SeedContent(cmd.Context(), db)
			if err != nil {
				return fmt.Errorf("error seeding data: %w", err)
			}

			fmt.Println("Sample data seeded successfully!")
			fmt.Printf("  %-14s %d\n", "Company:", report.Companies)
			fmt.Printf("  %-14s %d\n", "Services:", report.Services)
			fmt.Printf("  %-14s %d\n", "Team members:", report.TeamMembers)
			fmt.Printf("  %-14s %d\n", "Testimonials:", report.Testimonials)
			fmt.Printf("  %-14s %d\n", "Careers:", report.Careers)
			fmt.Printf("  %-14s %d\n", "Blog posts:", report.BlogPosts)
			return nil
		},
	}
}
