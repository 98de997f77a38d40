package branding

import (
	"bytes"
	"crypto/sha256"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"sync"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DOM contract shared with pages and host scripts.
const (
	StylesID       = "alice-shared-styles"
	HeaderID       = "site-header"
	FooterID       = "site-footer"
	UserMenuID     = "aliceUserMenu"
	UserInitialsID = "aliceUserInitials"

	headerClass = "alice-header"
	footerClass = "alice-footer"
)

// SignOutHandler is the inline click handler of the logout button. It calls
// window.aliceSignOut when the host page defines it.
const SignOutHandler = "window.aliceSignOut && window.aliceSignOut()"

// SignOutHandlerHash is the CSP source expression that allows SignOutHandler
// under 'unsafe-hashes'.
func SignOutHandlerHash() string {
	sum := sha256.Sum256([]byte(SignOutHandler))
	return "'sha256-" + base64.StdEncoding.EncodeToString(sum[:]) + "'"
}

//go:embed templates/*
var templatesFS embed.FS

var (
	headerTmpl = template.Must(template.New("header.html").
		Funcs(template.FuncMap{"signOutHandler": func() template.JS { return SignOutHandler }}).
		ParseFS(templatesFS, "templates/header.html"))
	footerTmpl = template.Must(template.ParseFS(templatesFS, "templates/footer.html"))
	stylesCSS  = mustRead("templates/styles.css")
)

func mustRead(name string) string {
	b, err := templatesFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// Injector brands HTML documents with one configuration. It is safe for
// concurrent use; UpdateConfig affects every later call.
type Injector struct {
	mu  sync.RWMutex
	cfg Config
	now func() time.Time
}

type Option func(*Injector)

// WithClock sets the time source used for the footer copyright year.
func WithClock(now func() time.Time) Option {
	return func(i *Injector) { i.now = now }
}

func NewInjector(cfg Config, opts ...Option) *Injector {
	i := &Injector{cfg: cfg.clone(), now: time.Now}
	for _, o := range opts {
		o(i)
	}
	return i
}

// Config returns a copy of the current configuration.
func (i *Injector) Config() Config {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.cfg.clone()
}

type footerData struct {
	Year int
}

func (i *Injector) render() (header, footer string, err error) {
	cfg := i.Config()

	var hb, fb bytes.Buffer
	if err := headerTmpl.Execute(&hb, cfg); err != nil {
		return "", "", fmt.Errorf("render header: %w", err)
	}
	if err := footerTmpl.Execute(&fb, footerData{Year: i.now().Year()}); err != nil {
		return "", "", fmt.Errorf("render footer: %w", err)
	}
	return hb.String(), fb.String(), nil
}

// Init makes sure doc carries the shared stylesheet, header and footer.
//
// The stylesheet is added to <head> once. An existing #site-header or
// #site-footer has its class and content replaced; otherwise the element is
// created as the first child (header) or last child (footer) of <body>.
// Parts whose anchor element is missing are skipped. An error means the
// header or footer markup could not be produced; doc is left unchanged then.
func (i *Injector) Init(doc *html.Node) error {
	header, footer, err := i.render()
	if err != nil {
		return err
	}
	headerNodes, err := parseMarkup(header)
	if err != nil {
		return fmt.Errorf("header markup: %w", err)
	}
	footerNodes, err := parseMarkup(footer)
	if err != nil {
		return fmt.Errorf("footer markup: %w", err)
	}

	if head := findElement(doc, atom.Head); head != nil && findByID(doc, StylesID) == nil {
		style := newElement(atom.Style, html.Attribute{Key: "id", Val: StylesID})
		style.AppendChild(&html.Node{Type: html.TextNode, Data: stylesCSS})
		head.AppendChild(style)
	}

	body := findElement(doc, atom.Body)
	place(doc, body, HeaderID, atom.Header, headerClass, headerNodes, true)
	place(doc, body, FooterID, atom.Footer, footerClass, footerNodes, false)
	return nil
}

func place(doc, body *html.Node, id string, a atom.Atom, class string, children []*html.Node, first bool) {
	el := findByID(doc, id)
	if el == nil {
		if body == nil {
			return
		}
		el = newElement(a, html.Attribute{Key: "id", Val: id})
		if first {
			body.InsertBefore(el, body.FirstChild)
		} else {
			body.AppendChild(el)
		}
	}
	setAttr(el, "class", class)
	setChildren(el, children)
}

// UpdateConfig merges o into the configuration and re-runs Init on doc.
func (i *Injector) UpdateConfig(doc *html.Node, o Overrides) error {
	i.mu.Lock()
	i.cfg = i.cfg.Apply(o)
	i.mu.Unlock()
	return i.Init(doc)
}

// ShowUserMenu reveals the user menu and fills in the avatar initials.
// When initials is empty they are derived from name.
func (i *Injector) ShowUserMenu(doc *html.Node, name, initials string) {
	menu := findByID(doc, UserMenuID)
	if menu == nil {
		return
	}
	setAttr(menu, "style", "display: flex;")
	if el := findByID(doc, UserInitialsID); el != nil {
		if initials == "" {
			initials = Initials(name)
		}
		setText(el, initials)
	}
}

func (i *Injector) HideUserMenu(doc *html.Node) {
	if menu := findByID(doc, UserMenuID); menu != nil {
		setAttr(menu, "style", "display: none;")
	}
}

// Brand parses one document from r, runs Init on it and writes the result to w.
func (i *Injector) Brand(r io.Reader, w io.Writer) error {
	return i.BrandForUser(r, w, "")
}

// BrandForUser is Brand followed by ShowUserMenu(user) when user is not empty.
func (i *Injector) BrandForUser(r io.Reader, w io.Writer, user string) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	if err := i.Init(doc); err != nil {
		return fmt.Errorf("brand document: %w", err)
	}
	if user != "" {
		i.ShowUserMenu(doc, user, "")
	}
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}
