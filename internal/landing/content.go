package landing

import "slices"

// SpanKind tags a run of text inside a description bullet.
type SpanKind int

const (
	SpanPlain SpanKind = iota
	SpanEmphasis
	// SpanBreak is a line break; its Text is ignored.
	SpanBreak
)

// Span is one styled run of text.
type Span struct {
	Kind SpanKind
	Text string
}

// Bullet is one line of a feature description.
type Bullet []Span

// Feature describes one promotional card of the feature grid.
type Feature struct {
	Title     string
	ImagePath string
	// Description is rendered as a bullet list.
	Description []Bullet
}

// CodeSample is literal source text plus the language used to highlight it.
type CodeSample struct {
	Language string
	Source   string
}

func plain(text string) Span { return Span{Kind: SpanPlain, Text: text} }
func emphasis(text string) Span { return Span{Kind: SpanEmphasis, Text: text} }

var lineBreak = Span{Kind: SpanBreak}

var features = [3]Feature{
	{
		Title:     "Easy to Setup",
		ImagePath: "img/undraw_authentication.svg",
		Description: []Bullet{
			{plain("Full stack open source authentication")},
			{plain("Designed for Next.js and Serverless")},
			{plain("Universal (client/server) rendering")},
			{plain("Bring Your Own Database (any database)"), lineBreak, emphasis("(MySQL, MariaDB, Postgres, MongoDB…)")},
		},
	},
	{
		Title:     "Easy to Sign in",
		ImagePath: "img/undraw_social.svg",
		Description: []Bullet{
			{plain("Sign in with any OAuth service provider")},
			{plain("Built in profiles for many oAuth services"), lineBreak, emphasis("(Google, Facebook, Twitter, Auth0…)")},
			{plain("Passwordless email sign in")},
			{plain("Secure account linking")},
		},
	},
	{
		Title:     "Secure by Default",
		ImagePath: "img/undraw_secure.svg",
		Description: []Bullet{
			{plain("CSRF protection with double submit cookie")},
			{plain("Cookies are signed, server-only, prefixed")},
			{plain("Session tokens secret from JavaScript")},
			{plain("Doesn't require client side JavaScript")},
		},
	},
}

// Features returns the feature grid content in display order.
// The result is a copy; callers may modify it freely.
func Features() [3]Feature {
	out := features
	for i := range out {
		desc := make([]Bullet, len(out[i].Description))
		for j, b := range out[i].Description {
			desc[j] = slices.Clone(b)
		}
		out[i].Description = desc
	}
	return out
}

const serverRouteCode = `import NextAuth from 'next-auth'
import Providers from 'next-auth/providers'

const options = {
  site: 'https://example.com'
  providers: [
    Providers.Google({
      clientId: process.env.GOOGLE_ID,
      clientSecret: process.env.GOOGLE_SECRET
    }),
    Providers.Email({
      server: process.env.MAIL_SERVER,
      from: '<no-reply@example.com>'
    }),
  ],
  database: process.env.DATABASE_URL
}

export default (req, res) => NextAuth(req, res, options)`

const clientComponentCode = `import React from 'react'
import { useSession } from 'next-auth/client'

export default () => {
  const [ session, loading ] = useSession()

  return <p>
    {!session && <>
      Not signed in <br/>
      <a href="/api/auth/signin">Sign in</a>
    </>}
    {session && <>
      Signed in as {session.user.email} <br/>
      <a href="/api/auth/signout">Sign out</a>
    </>}
  </p>
}`

// ServerRouteSample is the API route shown in the first quick start step.
func ServerRouteSample() CodeSample {
	return CodeSample{Language: "javascript", Source: serverRouteCode}
}

// ClientComponentSample is the React component shown in the second quick start step.
func ClientComponentSample() CodeSample {
	return CodeSample{Language: "javascript", Source: clientComponentCode}
}
