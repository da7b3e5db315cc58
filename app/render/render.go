// Package render turns dictionary lookup results and failure reports into
// styled terminal output. All printing goes through a Renderer bound to one
// writer; nothing in this package touches os.Stdout directly.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/rootdots/rich-dictionary-cli/app/clients/dictionaryapi"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Renderer prints lookup results and error reports to a single output
type Renderer struct {
	out io.Writer
	lip *lipgloss.Renderer

	headerBorder lipgloss.Style
	panelBorder  lipgloss.Style
	title        lipgloss.Style
	panelTitle   lipgloss.Style
	wordLabel    lipgloss.Style
	word         lipgloss.Style
	pos          lipgloss.Style
	number       lipgloss.Style
	phonetic     lipgloss.Style
	exampleLabel lipgloss.Style
	example      lipgloss.Style
	dim          lipgloss.Style
	errLabel     lipgloss.Style
	errText      lipgloss.Style
}

// New creates a Renderer writing to out. The color profile is detected from
// the writer, so a non-terminal destination gets plain text.
func New(out io.Writer) *Renderer {
	lip := lipgloss.NewRenderer(out)
	return &Renderer{
		out: out,
		lip: lip,
		headerBorder: lip.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 2),
		panelBorder: lip.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("2")).
			Padding(1, 2),
		title:        lip.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		panelTitle:   lip.NewStyle().Foreground(lipgloss.Color("3")),
		wordLabel:    lip.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		word:         lip.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		pos:          lip.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).Underline(true),
		number:       lip.NewStyle().Bold(true),
		phonetic:     lip.NewStyle().Italic(true),
		exampleLabel: lip.NewStyle().Faint(true),
		example:      lip.NewStyle().Italic(true),
		dim:          lip.NewStyle().Faint(true),
		errLabel:     lip.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		errText:      lip.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// NoColor drops styling down to plain ASCII output
func (r *Renderer) NoColor() {
	r.lip.SetColorProfile(termenv.Ascii)
}

// Display renders the header panel followed by one panel per meaning.
// Entries, meanings and definitions keep their response order.
func (r *Renderer) Display(word string, entries []dictionaryapi.WordEntry) {
	header := r.wordLabel.Render("WORD:") + " " + r.word.Render(strings.ToUpper(word))
	r.panel(r.title.Render("Dictionary search"), header, r.headerBorder)
	for _, entry := range entries {
		if p := entry.PhoneticText(); p != "" {
			fmt.Fprintln(r.out, "  Phonetic: "+r.phonetic.Render(p))
		}
		for _, meaning := range entry.Meanings {
			if len(meaning.Definitions) == 0 {
				continue
			}
			label := capitalize(meaning.PartOfSpeech)
			r.panel(r.panelTitle.Render(label), r.meaningBody(label, meaning), r.panelBorder)
		}
	}
}

func (r *Renderer) meaningBody(label string, meaning dictionaryapi.Meaning) string {
	var b strings.Builder
	b.WriteString(r.pos.Render(label))
	b.WriteString("\n")
	for i, def := range meaning.Definitions {
		b.WriteString("\n")
		b.WriteString(r.number.Render(fmt.Sprintf("%d. ", i+1)))
		b.WriteString(def.Definition)
		if def.Example != "" {
			b.WriteString("\n    " + r.exampleLabel.Render("Example: ") + r.example.Render(`"`+def.Example+`"`))
		}
		if len(def.Synonyms) > 0 {
			b.WriteString("\n    " + r.dim.Render("Synonyms: "+strings.Join(def.Synonyms, ", ")))
		}
		if len(def.Antonyms) > 0 {
			b.WriteString("\n    " + r.dim.Render("Antonyms: "+strings.Join(def.Antonyms, ", ")))
		}
	}
	return b.String()
}

func (r *Renderer) panel(title, body string, border lipgloss.Style) {
	fmt.Fprintln(r.out, title)
	fmt.Fprintln(r.out, border.Render(body))
}

// NotFound reports a word unknown to the dictionary service
func (r *Renderer) NotFound(word string) {
	r.report("Error:", fmt.Sprintf("no definition found for %q.", word))
}

// HTTPError reports a non-404 unsuccessful response status
func (r *Renderer) HTTPError(code int) {
	r.report(fmt.Sprintf("HTTP error %d:", code), "could not fetch data.")
}

// NetworkError reports a transport-level failure
func (r *Renderer) NetworkError(err error) {
	r.report("Network error:", fmt.Sprintf("%v.", err))
}

// JSONError reports a response body that could not be decoded
func (r *Renderer) JSONError(err error) {
	r.report("JSON error:", fmt.Sprintf("%v.", err))
}

// Unexpected reports any failure outside the known classes
func (r *Renderer) Unexpected(err error) {
	r.report("Unexpected error:", fmt.Sprintf("%v.", err))
}

// UnexpectedFormat reports a response that was not a non-empty entry array
func (r *Renderer) UnexpectedFormat(word string) {
	r.report("Error:", fmt.Sprintf("received unexpected data format for %q.", word))
}

func (r *Renderer) report(label, text string) {
	fmt.Fprintln(r.out, r.errLabel.Render(label)+" "+r.errText.Render(text))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
