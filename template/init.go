package template

import "fmt"

type ProjectTemplate struct {
	WebOutputDir    string
	SocialOutputDir string
}

func NewProjectTemplate() *ProjectTemplate {
	return &ProjectTemplate{
		WebOutputDir:    "synthetic_data",
		SocialOutputDir: "output",
	}
}

func (pt *ProjectTemplate) GetConfig() string {
	return fmt.Sprintf(`{
  "seed": 0,
  "rows_per_file": 1000000,
  "web": {
    "output_dir": "%s",
    "start": "2020-01-01",
    "end": "2024-12-31",
    "users": 1000,
    "sessions": 5000,
    "conversions": 170,
    "transactions": 210
  },
  "social": {
    "output_dir": "%s",
    "start": "2020-01-01",
    "end": "2024-12-31"
  }
}
`, pt.WebOutputDir, pt.SocialOutputDir)
}

func (pt *ProjectTemplate) GetEnvTemplate() string {
	return `# mockdata overrides, e.g.
# MOCKDATA_SEED=42
# MOCKDATA_SOCIAL_ROWS=100000
`
}

func (pt *ProjectTemplate) GetGitignore() string {
	return fmt.Sprintf("%s/\n%s/\n", pt.WebOutputDir, pt.SocialOutputDir)
}
