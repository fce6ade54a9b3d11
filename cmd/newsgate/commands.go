package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"newsgate/internal/apperr"
	"newsgate/internal/domain"
	"newsgate/internal/nntp"
)

var (
	errSyntax      = errors.New("command syntax error")
	errNoSuchGroup = errors.New("no such newsgroup")
)

// commandLine runs a single NNTP read command against the backend and
// prints an RFC 977 style response.
type commandLine struct {
	backend *nntp.Backend
	syncer  nntp.Syncer
	group   string
	out     io.Writer
}

func (c *commandLine) selected() (string, error) {
	if c.group == "" {
		return domain.Newsgroup, nil
	}
	if !c.backend.GroupExists(c.group) {
		return "", fmt.Errorf("%s: %w", c.group, errNoSuchGroup)
	}
	return c.group, nil
}

func (c *commandLine) run(ctx context.Context, cmd string, args []string) error {
	cmd = strings.ToLower(cmd)

	switch cmd {
	case "list":
		return c.list(ctx)
	case "xgtitle":
		return c.xgtitle(optional(args, 0))
	case "newgroups":
		return c.newgroups(ctx, args)
	case "newnews":
		return c.newnews(ctx, args)
	}

	group, err := c.selected()
	if err != nil {
		return err
	}

	switch cmd {
	case "sync":
		return c.sync(ctx, group)
	case "group":
		return c.groupCmd(ctx, group)
	case "listgroup":
		return c.listgroup(ctx, group)
	case "stat":
		return c.stat(ctx, group, args)
	case "article", "head", "body":
		return c.article(ctx, group, cmd, args)
	case "last", "next":
		return c.move(ctx, group, cmd, args)
	case "xover":
		return c.xover(ctx, group, args)
	case "xhdr":
		return c.xhdr(ctx, group, args)
	case "xpat":
		return c.xpat(ctx, group, args)
	}
	return fmt.Errorf("unknown command %q: %w", cmd, errSyntax)
}

// statusLine maps an error onto an NNTP failure response.
func statusLine(err error) string {
	switch {
	case errors.Is(err, errNoSuchGroup):
		return "411 no such news group"
	case errors.Is(err, apperr.ErrNotFound):
		return "423 no such article in group"
	case errors.Is(err, apperr.ErrUnsupported):
		return "500 command not supported"
	case errors.Is(err, errSyntax):
		return "501 " + err.Error()
	}
	return "503 program fault - command not performed"
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func parseNumber(args []string, i int) (int64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing article number: %w", errSyntax)
	}
	n, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("article number %q: %w", args[i], errSyntax)
	}
	return n, nil
}

func parseRange(args []string, i int) (domain.Range, error) {
	if i >= len(args) {
		return domain.All(), nil
	}
	rng, err := domain.ParseRange(args[i])
	if err != nil {
		return domain.Range{}, fmt.Errorf("%v: %w", err, errSyntax)
	}
	return rng, nil
}

func parseTime(args []string, i int) (time.Time, error) {
	if i >= len(args) {
		return time.Time{}, fmt.Errorf("missing time: %w", errSyntax)
	}
	t, err := time.Parse(time.RFC3339, args[i])
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q: %w", args[i], errSyntax)
	}
	return t, nil
}

func (c *commandLine) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format+"\n", a...)
}

func (c *commandLine) block(lines []string) {
	for _, l := range lines {
		c.printf("%s", l)
	}
	c.printf(".")
}

func (c *commandLine) sync(ctx context.Context, group string) error {
	stats, err := c.syncer.Sync(ctx, group)
	if err != nil {
		return err
	}
	c.printf("%s scanned=%d new=%d skipped=%d published=%d errors=%d duration=%s",
		stats.Newsgroup, stats.Scanned, stats.New, stats.Skipped, stats.Published, stats.Errors, stats.Duration)
	return nil
}

func (c *commandLine) list(ctx context.Context) error {
	entries, err := c.backend.List(ctx)
	if err != nil {
		return err
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}
	c.printf("215 list of newsgroups follows")
	c.block(lines)
	return nil
}

func (c *commandLine) groupCmd(ctx context.Context, group string) error {
	stats, err := c.backend.Group(ctx, group)
	if err != nil {
		return err
	}
	c.printf("211 %d %d %d %s", stats.Count, stats.Low, stats.High, group)
	return nil
}

func (c *commandLine) listgroup(ctx context.Context, group string) error {
	numbers, err := c.backend.ListGroup(ctx, group)
	if err != nil {
		return err
	}
	lines := make([]string, len(numbers))
	for i, n := range numbers {
		lines[i] = strconv.FormatInt(n, 10)
	}
	c.printf("211 article numbers follow")
	c.block(lines)
	return nil
}

func (c *commandLine) stat(ctx context.Context, group string, args []string) error {
	n, err := parseNumber(args, 0)
	if err != nil {
		return err
	}
	ok, err := c.backend.Stat(ctx, group, n)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("article %d: %w", n, apperr.ErrNotFound)
	}
	c.printf("223 %d article exists", n)
	return nil
}

func (c *commandLine) article(ctx context.Context, group, cmd string, args []string) error {
	id := optional(args, 0)
	if id == "" {
		return fmt.Errorf("missing article id: %w", errSyntax)
	}

	var (
		res  *nntp.Result
		code int
		err  error
	)
	switch cmd {
	case "head":
		res, err = c.backend.Head(ctx, group, id)
		code = 221
	case "body":
		res, err = c.backend.Body(ctx, group, id)
		code = 222
	default:
		res, err = c.backend.Article(ctx, group, id)
		code = 220
	}
	if err != nil {
		return err
	}

	c.printf("%d %d %s", code, res.Number, res.MessageID)
	var lines []string
	if len(res.Headers) > 0 {
		lines = append(lines, res.HeaderText())
	}
	if cmd == "article" {
		lines = append(lines, "")
	}
	if res.Body != "" {
		lines = append(lines, res.Body)
	}
	c.block(lines)
	return nil
}

func (c *commandLine) move(ctx context.Context, group, cmd string, args []string) error {
	current, err := parseNumber(args, 0)
	if err != nil {
		return err
	}

	var n int64
	if cmd == "last" {
		n, err = c.backend.Last(ctx, group, current)
	} else {
		n, err = c.backend.Next(ctx, group, current)
	}
	if err != nil {
		return err
	}
	c.printf("223 %d", n)
	return nil
}

func (c *commandLine) xover(ctx context.Context, group string, args []string) error {
	rng, err := parseRange(args, 0)
	if err != nil {
		return err
	}
	lines, err := c.backend.XOver(ctx, group, rng)
	if err != nil {
		return err
	}
	c.printf("224 overview information follows")
	c.block(lines)
	return nil
}

func (c *commandLine) xhdr(ctx context.Context, group string, args []string) error {
	header := optional(args, 0)
	if header == "" {
		return fmt.Errorf("missing header: %w", errSyntax)
	}
	rng, err := parseRange(args, 1)
	if err != nil {
		return err
	}
	rows, err := c.backend.XHdr(ctx, group, header, rng)
	if err != nil {
		return err
	}
	c.printf("221 %s fields follow", header)
	c.block(rows)
	return nil
}

func (c *commandLine) xpat(ctx context.Context, group string, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("xpat needs header, range and pattern: %w", errSyntax)
	}
	rng, err := parseRange(args, 1)
	if err != nil {
		return err
	}
	rows, err := c.backend.XPat(ctx, group, args[0], rng, args[2:]...)
	if err != nil {
		return err
	}
	c.printf("221 %s matches follow", args[0])
	c.block(rows)
	return nil
}

func (c *commandLine) xgtitle(pattern string) error {
	c.printf("282 list of groups and descriptions follows")
	c.block(c.backend.XGTitle(pattern))
	return nil
}

func (c *commandLine) newgroups(ctx context.Context, args []string) error {
	since, err := parseTime(args, 0)
	if err != nil {
		return err
	}
	groups, err := c.backend.NewGroups(ctx, since)
	if err != nil {
		return err
	}
	c.printf("231 list of new newsgroups follows")
	c.block(groups)
	return nil
}

func (c *commandLine) newnews(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("newnews needs pattern and time: %w", errSyntax)
	}
	since, err := parseTime(args, 1)
	if err != nil {
		return err
	}
	ids, err := c.backend.NewNews(ctx, args[0], since)
	if err != nil {
		return err
	}
	c.printf("230 list of new articles follows")
	c.block(ids)
	return nil
}
