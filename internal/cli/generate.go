package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/springscaffold/internal/ports/primary"
	"github.com/example/springscaffold/internal/wire"
)

// ModelCmd returns the model command.
func ModelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model <Name> [field:type ...]",
		Short: "Generate a data class",
		Long: `Generate an entity class with fields, optional JPA mapping, Lombok and validation.

Field format: name:type[:modifier...]
Modifiers: required, notnull, unique, max=N, min=V, maxval=V, pattern=REGEX

Examples:
  spring-scaffold model User username:String email:String:unique
  spring-scaffold model Product --fields "name:String:required:max=120,price:BigDecimal:min=0"
  spring-scaffold model Order --package com.shop.domain --lombok=false`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := outputDir(cmd)
			if err != nil {
				return err
			}
			pkg, _ := cmd.Flags().GetString("package")
			fields, _ := cmd.Flags().GetString("fields")
			table, _ := cmd.Flags().GetString("table")
			jpa, _ := cmd.Flags().GetBool("jpa")
			lombok, _ := cmd.Flags().GetBool("lombok")
			validation, _ := cmd.Flags().GetBool("validation")

			defer wire.Close()
			_, err = wire.ScaffoldAdapterWithOutput(cmd.OutOrStdout()).Model(cmd.Context(), primary.GenerateModelRequest{
				OutputDir:  output,
				Name:       args[0],
				Package:    pkg,
				Fields:     args[1:],
				FieldsFlag: fields,
				TableName:  table,
				JPA:        jpa,
				Lombok:     lombok,
				Validation: validation,
			})
			return err
		},
	}

	cmd.Flags().StringP("package", "p", "", "Target package; a bare segment is appended to the detected base (default <base>.model)")
	cmd.Flags().StringP("fields", "f", "", "Comma-separated fields (name:type[:modifier...])")
	cmd.Flags().String("table", "", "Table name (default: snake_case plural of the class name)")
	cmd.Flags().Bool("jpa", true, "Add JPA annotations")
	cmd.Flags().Bool("lombok", true, "Use Lombok instead of getters and setters")
	cmd.Flags().Bool("validation", false, "Add Bean Validation annotations")
	addDryRunFlag(cmd)

	return cmd
}

// ControllerCmd returns the controller command.
func ControllerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "controller <Name>",
		Short: "Generate a REST controller",
		Long: `Generate a REST controller. The model is inferred from the name by stripping
the "Controller" suffix unless --model is given.

Examples:
  spring-scaffold controller UserController --crud
  spring-scaffold controller ProductController --crud --swagger --path /api/v2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := outputDir(cmd)
			if err != nil {
				return err
			}
			pkg, _ := cmd.Flags().GetString("package")
			model, _ := cmd.Flags().GetString("model")
			modelPkg, _ := cmd.Flags().GetString("model-package")
			servicePkg, _ := cmd.Flags().GetString("service-package")
			path, _ := cmd.Flags().GetString("path")
			crud, _ := cmd.Flags().GetBool("crud")
			swagger, _ := cmd.Flags().GetBool("swagger")
			validation, _ := cmd.Flags().GetBool("validation")

			defer wire.Close()
			_, err = wire.ScaffoldAdapterWithOutput(cmd.OutOrStdout()).Controller(cmd.Context(), primary.GenerateControllerRequest{
				OutputDir:      output,
				Name:           args[0],
				Package:        pkg,
				Model:          model,
				ModelPackage:   modelPkg,
				ServicePackage: servicePkg,
				BasePath:       path,
				CRUD:           crud,
				Swagger:        swagger,
				Validation:     validation,
			})
			return err
		},
	}

	cmd.Flags().StringP("package", "p", "", "Target package (default <base>.controller)")
	cmd.Flags().StringP("model", "m", "", "Model class (default: inferred from the name)")
	cmd.Flags().String("model-package", "", "Model package (default <base>.model)")
	cmd.Flags().String("service-package", "", "Service package (default <base>.service)")
	cmd.Flags().String("path", "", "Base request path (default from config, /api/v1)")
	cmd.Flags().Bool("crud", false, "Generate CRUD endpoints")
	cmd.Flags().Bool("swagger", false, "Add OpenAPI annotations")
	cmd.Flags().Bool("validation", true, "Validate request bodies")
	addDryRunFlag(cmd)

	return cmd
}

// ServiceCmd returns the service command.
func ServiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service <Name>",
		Short: "Generate a service",
		Long: `Generate a service interface and its Impl class, or a single class with
--interface=false.

Examples:
  spring-scaffold service UserService --crud --transactional
  spring-scaffold service ReportService --interface=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := outputDir(cmd)
			if err != nil {
				return err
			}
			pkg, _ := cmd.Flags().GetString("package")
			model, _ := cmd.Flags().GetString("model")
			modelPkg, _ := cmd.Flags().GetString("model-package")
			repoPkg, _ := cmd.Flags().GetString("repository-package")
			iface, _ := cmd.Flags().GetBool("interface")
			crud, _ := cmd.Flags().GetBool("crud")
			transactional, _ := cmd.Flags().GetBool("transactional")
			validation, _ := cmd.Flags().GetBool("validation")

			defer wire.Close()
			_, err = wire.ScaffoldAdapterWithOutput(cmd.OutOrStdout()).Service(cmd.Context(), primary.GenerateServiceRequest{
				OutputDir:         output,
				Name:              args[0],
				Package:           pkg,
				Model:             model,
				ModelPackage:      modelPkg,
				RepositoryPackage: repoPkg,
				Interface:         iface,
				CRUD:              crud,
				Transactional:     transactional,
				Validation:        validation,
			})
			return err
		},
	}

	cmd.Flags().StringP("package", "p", "", "Target package (default <base>.service)")
	cmd.Flags().StringP("model", "m", "", "Model class (default: inferred from the name)")
	cmd.Flags().String("model-package", "", "Model package (default <base>.model)")
	cmd.Flags().String("repository-package", "", "Repository package (default <base>.repository)")
	cmd.Flags().Bool("interface", true, "Generate an interface plus Impl class")
	cmd.Flags().Bool("crud", false, "Generate CRUD methods")
	cmd.Flags().Bool("transactional", false, "Add @Transactional")
	cmd.Flags().Bool("validation", false, "Validate method arguments")
	addDryRunFlag(cmd)

	return cmd
}

// RepositoryCmd returns the repository command.
func RepositoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repository <Name>",
		Short: "Generate a Spring Data repository",
		Long: `Generate a repository interface.

Types: JPA, MONGODB, REACTIVE_MONGO, REACTIVE_R2DBC (unknown values fall back to JPA)

Examples:
  spring-scaffold repository UserRepository
  spring-scaffold repository EventRepository --type MONGODB --id-type String`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := outputDir(cmd)
			if err != nil {
				return err
			}
			pkg, _ := cmd.Flags().GetString("package")
			model, _ := cmd.Flags().GetString("model")
			modelPkg, _ := cmd.Flags().GetString("model-package")
			repoType, _ := cmd.Flags().GetString("type")
			idType, _ := cmd.Flags().GetString("id-type")
			customQueries, _ := cmd.Flags().GetBool("custom-queries")
			pagination, _ := cmd.Flags().GetBool("pagination")

			defer wire.Close()
			_, err = wire.ScaffoldAdapterWithOutput(cmd.OutOrStdout()).Repository(cmd.Context(), primary.GenerateRepositoryRequest{
				OutputDir:     output,
				Name:          args[0],
				Package:       pkg,
				Model:         model,
				ModelPackage:  modelPkg,
				Type:          repoType,
				IDType:        idType,
				CustomQueries: customQueries,
				Pagination:    pagination,
			})
			return err
		},
	}

	cmd.Flags().StringP("package", "p", "", "Target package (default <base>.repository)")
	cmd.Flags().StringP("model", "m", "", "Model class (default: inferred from the name)")
	cmd.Flags().String("model-package", "", "Model package (default <base>.model)")
	cmd.Flags().StringP("type", "t", "JPA", "Repository type")
	cmd.Flags().String("id-type", "Long", "Identifier type")
	cmd.Flags().Bool("custom-queries", true, "Add example finder queries")
	cmd.Flags().Bool("pagination", true, "Add pageable finders")
	addDryRunFlag(cmd)

	return cmd
}

func addDryRunFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("dry-run", false, "Render and report paths without writing files")
}
