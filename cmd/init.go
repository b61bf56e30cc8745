package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Lumos-Labs-HQ/mockdata/template"
	"github.com/spf13/cobra"
)

const configFileName = "mockdata.config.json"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default mockdata.config.json",
	Long:  `Create mockdata.config.json with the built-in defaults and an example .env in the current directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return initializeProject(force)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

func initializeProject(force bool) error {
	tmpl := template.NewProjectTemplate()

	if _, err := os.Stat(configFileName); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
	}

	if err := os.WriteFile(configFileName, []byte(tmpl.GetConfig()), 0644); err != nil {
		return fmt.Errorf("failed to create file %s: %w", configFileName, err)
	}

	if err := appendIfMissing(".env", "MOCKDATA_", tmpl.GetEnvTemplate()); err != nil {
		return fmt.Errorf("failed to handle .env file: %w", err)
	}
	if err := appendIfMissing(".gitignore", tmpl.WebOutputDir+"/", tmpl.GetGitignore()); err != nil {
		return fmt.Errorf("failed to handle .gitignore file: %w", err)
	}

	fmt.Println("✅ Successfully initialized mockdata")
	fmt.Println()
	fmt.Println("📝 Configuration file created:")
	fmt.Printf("   %s\n", configFileName)
	fmt.Println()
	fmt.Printf("🚀 Next steps:\n")
	fmt.Printf("   mockdata web                 # Generate the web-analytics dataset\n")
	fmt.Printf("   mockdata social --rows 1000  # Generate the social-media dataset\n")

	return nil
}

// appendIfMissing creates path with content, or appends content when the
// existing file does not mention marker yet.
func appendIfMissing(path, marker, content string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return os.WriteFile(path, []byte(content), 0644)
		}
		return err
	}

	existingStr := string(existing)
	if strings.Contains(existingStr, marker) {
		return nil
	}

	if len(existingStr) > 0 && !strings.HasSuffix(existingStr, "\n") {
		existingStr += "\n"
	}
	existingStr += "\n# Added by mockdata\n" + content

	return os.WriteFile(path, []byte(existingStr), 0644)
}
