package provider

import "regexp"

// Secret patterns scrubbed from transcripts before they leave the
// process. More specific patterns run first.
var scrubPatterns = []struct {
	regex       *regexp.Regexp
	replacement string
}{
	{
		regexp.MustCompile(`(OPENAI_API_KEY|ANTHROPIC_API_KEY|GITHUB_TOKEN|GITLAB_TOKEN|AWS_SECRET_ACCESS_KEY)\s*=\s*([^\s]+)`),
		"$1=[REDACTED:ENV_SECRET]",
	},
	{
		regexp.MustCompile(`sk-ant-[a-zA-Z0-9-]{20,}`),
		"[REDACTED:ANTHROPIC_KEY]",
	},
	{
		regexp.MustCompile(`sk-[a-zA-Z0-9]{20,}`),
		"[REDACTED:OPENAI_KEY]",
	},
	{
		regexp.MustCompile(`(?i)(api[_-]?key|apikey)\s*[:=]\s*["']?\s*([^"'\s]{8,})["']?`),
		"$1=[REDACTED:API_KEY]",
	},
	{
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9_\-\.=]{20,}`),
		"[REDACTED:BEARER_TOKEN]",
	},
	{
		regexp.MustCompile(`(?i)(token|auth[_-]?token)\s*[:=]\s*["']?\s*([^"'\s]{8,})["']?`),
		"$1=[REDACTED:TOKEN]",
	},
	{
		regexp.MustCompile(`(?i)(password|passwd|pwd)\s*[:=]\s*["']?\s*([^"'\s]{4,})["']?`),
		"$1=[REDACTED:PASSWORD]",
	},
	{
		regexp.MustCompile(`(?i)-----BEGIN (RSA |EC |DSA |OPENSSH )?PRIVATE KEY-----[\s\S]*?-----END (RSA |EC |DSA |OPENSSH )?PRIVATE KEY-----`),
		"[REDACTED:PRIVATE_KEY]",
	},
}

// scrubSecrets removes common secret patterns from transcript content
// before it is sent to a model API.
func scrubSecrets(content string) string {
	result := content
	for _, p := range scrubPatterns {
		result = p.regex.ReplaceAllString(result, p.replacement)
	}
	return result
}
