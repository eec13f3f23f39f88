package domain

const (
	Header = "Start of modified content"
	Footer = "End of modified content"
)

// Wrap places content between the header and footer lines. The content is
// kept verbatim; no newline is added after the footer.
func Wrap(content string) string {
	return Header + "\n" + content + "\n" + Footer
}
