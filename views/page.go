package views

import (
	"fmt"
	"html/template"
	"io"
)

// Page is everything the index template renders for one session.
type Page struct {
	SessionID string
	Hero      Hero
	Deck      DeckView
	Matches   MatchesPanel
	History   HistoryPanel
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

// RenderPage writes the full HTML page.
func RenderPage(w io.Writer, page Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Heartwave</title>
</head>
<body data-session="{{.SessionID}}">
<main>
  <header class="hero">
    <span class="badge">{{.Hero.Badge}}</span>
    <h1>{{.Hero.Headline}}</h1>
    <p>{{.Hero.Tagline}}</p>
    <div class="stats">
      {{range .Hero.Stats}}<div class="stat"><p>{{.Title}}</p><p><strong>{{.Value}}</strong></p><p>{{.Descriptor}}</p></div>{{end}}
    </div>
  </header>

  <section class="deck">
    {{with .Deck}}
    {{if .CaughtUp}}
    <div class="caught-up">
      <h3>{{.Title}}</h3>
      <p>{{.Message}}</p>
    </div>
    {{else}}
    {{with .Next}}<div class="card next muted"><img src="{{.Cover}}" alt="{{.Name}}"><h3>{{.Name}} <span>{{.Age}}</span></h3><p>{{.Bio}}</p></div>{{end}}
    {{with .Active}}
    <article class="card active" data-profile="{{.ID}}">
      <img class="cover" src="{{.Cover}}" alt="{{.Name}} cover">
      <span class="vibe">{{.VibeMatch}}</span>
      <img class="avatar" src="{{.Avatar}}" alt="{{.Name}}">
      <h2>{{.Name}} <span>{{.Age}}</span></h2>
      <p>{{.JobTitle}} · {{.Company}}</p>
      <p class="location">{{.Location}}</p>
      {{if .Trophies}}<div class="trophies">{{range .Trophies}}<span class="chip">{{.}}</span>{{end}}</div>{{end}}
      <p class="bio">{{.Bio}}</p>
      <div class="prompt"><p>{{.Prompt}}</p><p>{{.PromptAnswer}}</p></div>
      <div class="interests">{{range .Interests}}<span class="chip">{{.}}</span>{{end}}</div>
    </article>
    {{end}}
    {{end}}
    {{end}}
    <form class="actions" method="post" action="/swipe">
      <button type="submit" name="action" value="nope">Nope</button>
      <button type="submit" name="action" value="like">Like</button>
      <button type="submit" name="action" value="super">Spark</button>
    </form>
  </section>

  <aside>
    {{with .Matches}}
    <div class="panel matches">
      <h3>{{.Title}}</h3>
      <p>{{.Summary}}</p>
      <div class="avatars">{{range .Avatars}}<img src="{{.URL}}" alt="{{.Name}}">{{end}}</div>
      {{template "section" .Sparks}}
      {{template "section" .Likes}}
    </div>
    {{end}}

    {{with .History}}
    <div class="panel history">
      <h3>{{.Title}}</h3>
      {{if .Empty}}<p>{{.Empty}}</p>{{end}}
      {{range .Entries}}<div class="entry {{.Action}}"><span>{{.Text}}</span><span>{{.Label}}</span></div>{{end}}
    </div>
    {{end}}
  </aside>
</main>
</body>
</html>
{{define "section"}}<div class="section">
  <h4>{{.Title}}</h4>
  {{with .Empty}}<div class="empty"><p>{{.Label}}</p><p>{{.Description}}</p></div>{{end}}
  {{range .Badges}}<div class="badge {{.Tone}}"><img src="{{.Avatar}}" alt="{{.Name}}"><p>{{.Name}}</p><p>{{.Subtitle}}</p><span>{{.Label}}</span></div>{{end}}
</div>{{end}}
`
