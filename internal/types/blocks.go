package types

// BlockStyle identifies the visual style the renderer applies to a block.
// The generator only decides structure; the renderer owns fonts, colors and
// spacing for each style.
type BlockStyle string

const (
	StyleName          BlockStyle = "name"
	StyleContact       BlockStyle = "contact"
	StyleSectionHeader BlockStyle = "section_header"
	StyleJobTitle      BlockStyle = "job_title"
	StyleCompanyLine   BlockStyle = "company_line"
	StyleBody          BlockStyle = "body"
)

// Block is a single styled piece of document content. The generated CV is an
// ordered sequence of blocks handed to the renderer as-is.
type Block struct {
	Style BlockStyle `json:"style"`
	Text  string     `json:"text"`
}
