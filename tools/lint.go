package tools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	rfc3986 "github.com/fredbi/uri"
	"github.com/spf13/cobra"
	"github.com/weburi/weburi/std/log"
	"github.com/weburi/weburi/std/uri"
	"github.com/weburi/weburi/std/uri/storage"
	"github.com/weburi/weburi/std/utils/toolutils"
)

// Records of URIs that cannot be decoded are kept apart from the origins.
const invalidSegment = "!invalid"

// Linter validates URIs and records the outcome of each distinct one.
type Linter struct {
	opts  uri.Options
	store storage.Store
	seen  map[uint64]struct{}

	// Compare each verdict with an independent RFC 3986 validator.
	CrossCheck    bool
	Disagreements int

	Total      int
	Duplicates int
	Valid      int
	Warnings   int
	Invalid    int
}

func NewLinter(opts uri.Options, store storage.Store) *Linter {
	return &Linter{
		opts:  opts,
		store: store,
		seen:  make(map[uint64]struct{}),
	}
}

func (l *Linter) String() string {
	return "lint"
}

// Check validates one URI and puts its record in the store. It returns
// false if the URI has the same normal form as one checked before.
func (l *Linter) Check(raw string) (*uri.URI, bool, error) {
	l.Total++
	u := uri.View(raw, l.opts)
	st := u.Status()

	key := []string{invalidSegment, raw}
	if s, err := uri.NewStructured(u); err == nil {
		norm := s.Normalize()
		hash := norm.Hash()
		if _, ok := l.seen[hash]; ok {
			l.Duplicates++
			return u, false, nil
		}
		l.seen[hash] = struct{}{}
		key = norm.Key()
	}

	if l.CrossCheck {
		if other := rfc3986.IsURIReference(raw); other == st.HasError() {
			l.Disagreements++
			log.Debug(l, "Validators disagree", "uri", raw, "status", st.Value().Name(), "rfc3986", other)
		}
	}

	switch {
	case st.HasError():
		l.Invalid++
	case st.HasWarnings():
		l.Warnings++
		l.Valid++
	default:
		l.Valid++
	}

	rec := storage.Record{URI: u.String(), Code: st.Code()}
	if err := l.store.Put(key, rec); err != nil {
		return u, true, fmt.Errorf("store %s: %w", raw, err)
	}
	log.Trace(l, "URI recorded", "uri", raw, "code", rec.Code)
	return u, true, nil
}

// Run checks every URI listed in r inside one store transaction.
func (l *Linter) Run(r io.Reader, w io.Writer) error {
	root := l.store
	tx, err := root.Begin()
	if err != nil {
		return err
	}
	l.store = tx
	defer func() { l.store = root }()

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		u, fresh, err := l.Check(raw)
		if err != nil {
			tx.Rollback()
			return err
		}
		if !fresh {
			continue
		}
		if st := u.Status(); st.HasError() || st.HasWarnings() {
			fmt.Fprintf(w, "%d: %s %s: %s\n", line, statusLabel(st), raw,
				strings.ReplaceAll(st.String(), "\n", " "))
		}
	}
	if err := scanner.Err(); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (t *Tool) runLint(cmd *cobra.Command, args []string) error {
	desc, _ := cmd.Flags().GetString("store")
	if desc == "" {
		desc, _ = t.config.Store.Desc()
	}
	store, err := storage.Open(desc)
	if err != nil {
		return err
	}
	defer store.Close()

	var in io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	l := NewLinter(t.opts, store)
	l.CrossCheck, _ = cmd.Flags().GetBool("crosscheck")
	if l.CrossCheck && t.opts.Whatwg {
		return fmt.Errorf("--crosscheck needs the strict preset")
	}
	if err := l.Run(in, cmd.OutOrStdout()); err != nil {
		return err
	}

	p := toolutils.StatusPrinter{File: cmd.OutOrStdout(), Padding: 10}
	p.Print("total", l.Total)
	p.Print("duplicates", l.Duplicates)
	p.Print("valid", l.Valid)
	p.Print("warnings", l.Warnings)
	p.Print("invalid", l.Invalid)
	p.PrintIf("disagree", l.Disagreements, l.CrossCheck)

	if l.Invalid > 0 {
		return fmt.Errorf("%d invalid URIs", l.Invalid)
	}
	return nil
}
