package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/springscaffold/internal/ports/primary"
	"github.com/example/springscaffold/internal/wire"
)

// ProjectCmd returns the project command.
func ProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project <name>",
		Short: "Generate a new Spring Boot project",
		Long: `Generate a Maven project skeleton in <output>/<name in kebab-case>.

Databases: H2, MYSQL, POSTGRESQL, MONGODB, SQLSERVER
Packaging: JAR, WAR

Examples:
  spring-scaffold project my-shop --package com.shop
  spring-scaffold project "Billing API" --database POSTGRESQL --dependencies web,jpa,validation,test`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := outputDir(cmd)
			if err != nil {
				return err
			}
			pkg, _ := cmd.Flags().GetString("package")
			groupID, _ := cmd.Flags().GetString("group-id")
			description, _ := cmd.Flags().GetString("description")
			springVersion, _ := cmd.Flags().GetString("spring-version")
			javaVersion, _ := cmd.Flags().GetString("java-version")
			deps, _ := cmd.Flags().GetString("dependencies")
			database, _ := cmd.Flags().GetString("database")
			packaging, _ := cmd.Flags().GetString("packaging")
			docker, _ := cmd.Flags().GetBool("docker")
			gitignore, _ := cmd.Flags().GetBool("gitignore")
			readme, _ := cmd.Flags().GetBool("readme")

			defer wire.Close()
			_, err = wire.ScaffoldAdapterWithOutput(cmd.OutOrStdout()).Project(cmd.Context(), primary.GenerateProjectRequest{
				OutputDir:         output,
				Name:              strings.TrimSpace(args[0]),
				Package:           pkg,
				GroupID:           groupID,
				Description:       description,
				SpringBootVersion: springVersion,
				JavaVersion:       javaVersion,
				Dependencies:      splitList(deps),
				Database:          database,
				Packaging:         packaging,
				Docker:            docker,
				Gitignore:         gitignore,
				Readme:            readme,
			})
			return err
		},
	}

	cmd.Flags().StringP("package", "p", "com.example", "Base package")
	cmd.Flags().String("group-id", "", "Maven group id (default: the base package)")
	cmd.Flags().String("description", "", "Project description")
	cmd.Flags().String("spring-version", "", "Spring Boot version (default from config, 3.2.0)")
	cmd.Flags().String("java-version", "", "Java version (default from config, 17)")
	cmd.Flags().StringP("dependencies", "d", "web,jpa,test", "Comma-separated starters")
	cmd.Flags().String("database", "H2", "Database")
	cmd.Flags().String("packaging", "JAR", "Packaging")
	cmd.Flags().Bool("docker", true, "Generate a Dockerfile")
	cmd.Flags().Bool("gitignore", true, "Generate a .gitignore")
	cmd.Flags().Bool("readme", true, "Generate a README.md")
	addDryRunFlag(cmd)

	return cmd
}
