package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eringen/sitehead"
	"github.com/eringen/sitehead/sitedata"
)

func clearSiteEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{sitedata.EnvTitle, sitedata.EnvDescription, sitedata.EnvTwitter} {
		t.Setenv(k, "")
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "sitehead dev\n", out)
}

func TestInitThenHead(t *testing.T) {
	clearSiteEnv(t)
	dir := filepath.Join(t.TempDir(), "demo-site")

	out, err := run(t, "init", dir)
	require.NoError(t, err)
	require.Contains(t, out, "created")
	require.FileExists(t, filepath.Join(dir, "site.yaml"))
	require.FileExists(t, filepath.Join(dir, "content", "index.md"))
	require.FileExists(t, filepath.Join(dir, ".env.example"))

	out, err = run(t, "head", filepath.Join(dir, "content", "index.md"), "--site", filepath.Join(dir, "site.yaml"))
	require.NoError(t, err)
	require.Contains(t, out, "<title>Home | Demo Site</title>")
	require.Contains(t, out, `<meta name="description" content="Welcome to Demo Site">`)
	require.Contains(t, out, `<meta name="robots" content="index, follow">`)

	_, err = run(t, "init", dir)
	require.Error(t, err, "init must refuse an existing directory")
}

func TestHeadJSONFromQuery(t *testing.T) {
	clearSiteEnv(t)
	dir := t.TempDir()
	page := filepath.Join(dir, "page.md")
	query := filepath.Join(dir, "query.json")
	require.NoError(t, os.WriteFile(page, []byte("---\ntitle: Page\n---\n"), 0o644))
	require.NoError(t, os.WriteFile(query, []byte(`{"site":{"siteMetadata":{"title":"MySite","description":"A site","social":{"twitter":"@me"}}}}`), 0o644))

	out, err := run(t, "head", page, "--query", query, "--json")
	require.NoError(t, err)

	var head sitehead.Head
	require.NoError(t, json.Unmarshal([]byte(out), &head))
	require.Equal(t, "Page", head.Title)
	require.Equal(t, "%s | MySite", head.TitleTemplate)
	require.Equal(t, "en", head.HTMLAttributes.Lang)
	require.Len(t, head.Meta, sitehead.BaseTagCount)
	creator, _ := head.Lookup("twitter:creator")
	require.Equal(t, "@me", creator)
}

func TestHeadWithoutSite(t *testing.T) {
	clearSiteEnv(t)
	page := filepath.Join(t.TempDir(), "page.md")
	require.NoError(t, os.WriteFile(page, []byte("---\ntitle: Page\ndescription: Custom\n---\n"), 0o644))

	out, err := run(t, "head", page)
	require.NoError(t, err)
	require.Contains(t, out, "<title>Page</title>")
	require.Contains(t, out, `<meta name="twitter:creator" content="">`)
	require.Contains(t, out, `<meta name="description" content="Custom">`)
}

func TestHeadMissingPage(t *testing.T) {
	_, err := run(t, "head", filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
}

func TestSiteSetAndShow(t *testing.T) {
	clearSiteEnv(t)
	db := filepath.Join(t.TempDir(), "site.db")

	_, err := run(t, "site", "set", "--db", db, "--title", "Stored", "--twitter", "@stored")
	require.NoError(t, err)

	out, err := run(t, "site", "show", "--db", db)
	require.NoError(t, err)
	require.Contains(t, out, "title:       Stored")
	require.Contains(t, out, "twitter:     @stored")

	out, err = run(t, "site", "show")
	require.NoError(t, err)
	require.Equal(t, "no site metadata\n", out)
}

func TestSiteClear(t *testing.T) {
	clearSiteEnv(t)
	dir := t.TempDir()
	db := filepath.Join(dir, "site.db")
	page := filepath.Join(dir, "page.md")
	require.NoError(t, os.WriteFile(page, []byte("---\ntitle: Page\n---\n"), 0o644))

	_, err := run(t, "site", "set", "--db", db, "--title", "Stored")
	require.NoError(t, err)
	out, err := run(t, "head", page, "--db", db)
	require.NoError(t, err)
	require.Contains(t, out, "<title>Page | Stored</title>")

	_, err = run(t, "site", "clear", "--db", db)
	require.NoError(t, err)

	out, err = run(t, "site", "show", "--db", db)
	require.NoError(t, err)
	require.Equal(t, "no site metadata\n", out)
	out, err = run(t, "head", page, "--db", db)
	require.NoError(t, err)
	require.Contains(t, out, "<title>Page</title>")
}

func TestInitQuotesSiteName(t *testing.T) {
	clearSiteEnv(t)

	names := []string{`Foo "Bar"`, "A: B", "#hash", `back\slash`, "it's"}
	for i, name := range names {
		dir := filepath.Join(t.TempDir(), fmt.Sprintf("site-%d", i))
		_, err := run(t, "init", dir, "--name", name)
		require.NoError(t, err, name)

		out, err := run(t, "head", filepath.Join(dir, "content", "index.md"), "--site", filepath.Join(dir, "site.yaml"), "--json")
		require.NoError(t, err, name)

		var head sitehead.Head
		require.NoError(t, json.Unmarshal([]byte(out), &head), name)
		require.Equal(t, "Home", head.Title, name)
		require.Equal(t, "%s | "+name, head.TitleTemplate, name)
		desc, _ := head.Lookup("description")
		require.Equal(t, "Welcome to "+name, desc, name)
	}
}

func TestToTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my-blog", "My Blog"},
		{"myblog", "Myblog"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := toTitle(tt.in); got != tt.want {
			t.Errorf("toTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
