// Package locale renders the television's user-facing text.
//
// Messages live in a private x/text catalog with Brazilian Portuguese as the
// default language and English as the alternative. Requested tags are
// matched against that set, so "pt", "pt-PT" or "en-GB" resolve to the
// closest bundled language.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Catalog keys.
const (
	keyPowerOn        = "TV powered on at channel %d"
	keyInvalidChannel = "Invalid channel."
	keyStatus         = "Current channel: %d | Volume: %s"
	keyMuted          = "Muted"
)

var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.English,
}

var (
	matcher = language.NewMatcher(supported)
	texts   = buildCatalog()
)

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.BrazilianPortuguese))
	set := func(tag language.Tag, key, msg string) {
		if err := b.SetString(tag, key, msg); err != nil {
			panic(fmt.Sprintf("locale: register %q for %s: %v", key, tag, err))
		}
	}

	set(language.BrazilianPortuguese, keyPowerOn, "TV ligada no canal %d")
	set(language.BrazilianPortuguese, keyInvalidChannel, "Canal inválido.")
	set(language.BrazilianPortuguese, keyStatus, "Canal atual: %d | Volume: %s")
	set(language.BrazilianPortuguese, keyMuted, "Mudo")

	set(language.English, keyPowerOn, keyPowerOn)
	set(language.English, keyInvalidChannel, keyInvalidChannel)
	set(language.English, keyStatus, keyStatus)
	set(language.English, keyMuted, keyMuted)
	return b
}

// Printer formats television messages for one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a printer for the bundled language closest to tag. An empty
// tag selects the default language.
func New(tag string) (*Printer, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return Default(), nil
	}
	requested, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", tag, err)
	}
	_, index, _ := matcher.Match(requested)
	return newPrinter(supported[index]), nil
}

// Default returns the Brazilian Portuguese printer.
func Default() *Printer {
	return newPrinter(language.BrazilianPortuguese)
}

func newPrinter(tag language.Tag) *Printer {
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(texts))}
}

// Tag reports the bundled language the printer resolved to.
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// PowerOn announces the channel restored at power-on.
func (p *Printer) PowerOn(channel int) string {
	return p.p.Sprintf(keyPowerOn, channel)
}

// InvalidChannel is shown when a direct channel entry is out of range.
func (p *Printer) InvalidChannel() string {
	return p.p.Sprintf(keyInvalidChannel)
}

// Muted is the volume indicator used while the mute gate is closed.
func (p *Printer) Muted() string {
	return p.p.Sprintf(keyMuted)
}

// Status renders the status line with either the volume or the muted indicator.
func (p *Printer) Status(channel, volume int, muted bool) string {
	level := fmt.Sprint(volume)
	if muted {
		level = p.Muted()
	}
	return p.p.Sprintf(keyStatus, channel, level)
}
