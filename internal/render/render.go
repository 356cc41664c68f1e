package render

import (
	"fmt"
	"html/template"
	"strings"

	"easel/internal/catalog"
	"easel/internal/config"
)

// Renderer maps records to markup fragments. It performs no I/O; asset
// paths are derived from config, not checked here.
type Renderer struct {
	cfg *config.Config
	tpl *template.Template
}

// Fragment is the rendered output for one record set.
type Fragment struct {
	// Featured is the curated highlight section, empty when no record
	// carries the featured flag.
	Featured string
	// Gallery is the category-tabbed section.
	Gallery string
	// FeaturedEmpty signals the empty curation case so callers can warn.
	FeaturedEmpty bool
}

// Sections joins the featured and gallery sections into the splice payload.
func (f Fragment) Sections() string {
	if f.Featured == "" {
		return f.Gallery
	}
	return f.Featured + "\n" + f.Gallery
}

type cardData struct {
	CardClass   string
	ImageURL    string
	Title       string
	Medium      string
	Description string
	Price       string
}

type buttonData struct {
	Key    string
	Label  string
	Active bool
}

type panelData struct {
	Key   string
	Cards []template.HTML
}

// New parses the fragment templates against the given configuration.
func New(cfg *config.Config) (*Renderer, error) {
	tpl, err := template.New("fragments").Parse(fragmentTemplates)
	if err != nil {
		return nil, fmt.Errorf("parse fragment templates: %w", err)
	}
	return &Renderer{cfg: cfg, tpl: tpl}, nil
}

// Render produces the full fragment set for the record sequence.
func (r *Renderer) Render(records []catalog.Record) (Fragment, error) {
	var frag Fragment

	featured := catalog.Featured(records)
	if len(featured) == 0 {
		frag.FeaturedEmpty = true
	} else {
		section, err := r.featuredSection(featured)
		if err != nil {
			return Fragment{}, err
		}
		frag.Featured = section
	}

	gallery, err := r.tabbedGallery(records)
	if err != nil {
		return Fragment{}, err
	}
	frag.Gallery = gallery

	return frag, nil
}

// Card renders a single record card with the given CSS class.
func (r *Renderer) Card(rec catalog.Record, cardClass string) (string, error) {
	var sb strings.Builder
	data := cardData{
		CardClass:   cardClass,
		ImageURL:    r.cfg.AssetURL(rec.Location, rec.Filename),
		Title:       rec.Title,
		Medium:      rec.Medium,
		Description: rec.Description,
		Price:       rec.Price,
	}
	if err := r.tpl.ExecuteTemplate(&sb, "card", data); err != nil {
		return "", fmt.Errorf("render card %q: %w", rec.Title, err)
	}
	return sb.String(), nil
}

func (r *Renderer) featuredSection(featured []catalog.Record) (string, error) {
	cards, err := r.cards(featured, "painting-card featured-card")
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := r.tpl.ExecuteTemplate(&sb, "featured", struct{ Cards []template.HTML }{cards}); err != nil {
		return "", fmt.Errorf("render featured section: %w", err)
	}
	return sb.String(), nil
}

// tabbedGallery renders one tab button per configured category and one
// panel per non-empty bucket, in configured order regardless of input
// order. Empty buckets produce no panel at all.
func (r *Renderer) tabbedGallery(records []catalog.Record) (string, error) {
	keys := r.cfg.CategoryKeys()
	buckets := catalog.GroupByLocation(records, keys)

	buttons := make([]buttonData, 0, len(keys))
	var panels []panelData
	for i, key := range keys {
		buttons = append(buttons, buttonData{
			Key:    key,
			Label:  r.cfg.CategoryLabel(key),
			Active: i == 0,
		})

		bucket := buckets[key]
		if len(bucket) == 0 {
			continue
		}
		cards, err := r.cards(bucket, "painting-card")
		if err != nil {
			return "", err
		}
		panels = append(panels, panelData{Key: key, Cards: cards})
	}

	var sb strings.Builder
	data := struct {
		Buttons []buttonData
		Panels  []panelData
	}{buttons, panels}
	if err := r.tpl.ExecuteTemplate(&sb, "gallery", data); err != nil {
		return "", fmt.Errorf("render gallery: %w", err)
	}
	return sb.String(), nil
}

func (r *Renderer) cards(records []catalog.Record, cardClass string) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(records))
	for _, rec := range records {
		card, err := r.Card(rec, cardClass)
		if err != nil {
			return nil, err
		}
		out = append(out, template.HTML(card))
	}
	return out, nil
}

// ScriptBlock returns the tab-switching script with the first configured
// category as the default open tab.
func (r *Renderer) ScriptBlock() string {
	keys := r.cfg.CategoryKeys()
	defaultKey := ""
	if len(keys) > 0 {
		defaultKey = keys[0]
	}
	return fmt.Sprintf(scriptBlock, template.JSEscapeString(defaultKey))
}
