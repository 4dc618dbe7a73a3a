package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/springscaffold/internal/ports/primary"
	"github.com/example/springscaffold/internal/wire"
)

// SecurityCmd returns the security command.
func SecurityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "security",
		Short: "Generate a JWT security configuration",
		Long: `Generate Spring Security with JWT authentication:
  - SecurityConfig, JwtUtils, JwtAuthenticationEntryPoint, JwtAuthenticationFilter,
    UserDetailsServiceImpl, UserPrincipal, JwtRequest, JwtResponse (security package)
  - AuthController (sibling controller package)
  - Spring Security and jjwt dependencies in pom.xml
  - findByUsername/existsByUsername in the user repository

Re-running is safe: existing files are kept and patches are applied once.

Examples:
  spring-scaffold security
  spring-scaffold security --user-entity Account --jwt-expiration 3600000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := outputDir(cmd)
			if err != nil {
				return err
			}
			pkg, _ := cmd.Flags().GetString("package")
			secret, _ := cmd.Flags().GetString("jwt-secret")
			expiration, _ := cmd.Flags().GetInt64("jwt-expiration")
			userEntity, _ := cmd.Flags().GetString("user-entity")
			userPkg, _ := cmd.Flags().GetString("user-package")
			cors, _ := cmd.Flags().GetBool("cors")

			defer wire.Close()
			_, err = wire.ScaffoldAdapterWithOutput(cmd.OutOrStdout()).Security(cmd.Context(), primary.GenerateSecurityRequest{
				OutputDir:       output,
				Package:         pkg,
				JWTSecret:       secret,
				JWTExpirationMs: expiration,
				UserEntity:      userEntity,
				UserPackage:     userPkg,
				CORS:            cors,
			})
			return err
		},
	}

	cmd.Flags().StringP("package", "p", "", "Security package (default <base>.security)")
	cmd.Flags().String("jwt-secret", "", "JWT signing secret, at least 32 characters (default: development secret)")
	cmd.Flags().Int64("jwt-expiration", 86400000, "JWT lifetime in milliseconds")
	cmd.Flags().String("user-entity", "User", "User entity class")
	cmd.Flags().String("user-package", "", "User entity package (default <base>.model)")
	cmd.Flags().Bool("cors", true, "Enable CORS")
	addDryRunFlag(cmd)

	return cmd
}
