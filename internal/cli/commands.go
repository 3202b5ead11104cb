package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/coerce"
	"github.com/aretw0/coerce/internal/validator"
	"github.com/aretw0/coerce/pkg/adapters/file"
	"github.com/aretw0/coerce/pkg/ident"
	"github.com/aretw0/coerce/pkg/schema"
)

// RunValue coerces a single value under a schema identifier or, when
// asForm is set, under form text.
func RunValue(c *coerce.Coercer, target string, value string, asForm bool, w io.Writer) error {
	var (
		out any
		err error
	)
	if asForm {
		form, ferr := schema.ParseForm(target)
		if ferr != nil {
			return ferr
		}
		out, err = c.CoerceForm(form, value)
	} else {
		id, kerr := ident.ParseKeyword(target)
		if kerr != nil {
			return kerr
		}
		out, err = c.CoerceValue(id, value)
	}
	if err != nil {
		return err
	}
	return WriteJSON(w, out)
}

// RunWalk coerces every value of the document read from r.
func RunWalk(c *coerce.Coercer, r io.Reader, w io.Writer) error {
	doc, err := ReadDocument(r)
	if err != nil {
		return err
	}
	out, err := c.CoerceStructure(doc)
	if err != nil {
		return err
	}
	return WriteJSON(w, out)
}

// RunSchemas lists the known schemas with the source each resolves to.
func RunSchemas(c *coerce.Coercer, reg *schema.Registry, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFORM\tGOVERNING\tPARENT")
	for _, id := range reg.IDs() {
		form, _ := reg.FormOf(id)

		governing := "-"
		if g, ok, err := c.GoverningForm(id); err != nil {
			governing = "cycle"
		} else if ok {
			governing = g.String()
		}

		parent := "-"
		if p, ok := c.ParentOf(id); ok {
			parent = p.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", id, form, governing, parent)
	}
	return tw.Flush()
}

// CheckSchemas reports dangling references and cycles.
func CheckSchemas(reg *schema.Registry, w io.Writer) error {
	if err := validator.ValidateSchemas(reg); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "ok: %d schemas\n", len(reg.IDs()))
	return err
}

// ExportSchemas writes the registry as a YAML schema document.
func ExportSchemas(reg *schema.Registry, w io.Writer) error {
	data, err := file.Encode(reg)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// PushSchemas copies the registry into the configured Redis store.
func PushSchemas(ctx context.Context, opts Options, reg *schema.Registry) error {
	if opts.RedisURL == "" {
		return fmt.Errorf("--redis is required to push schemas")
	}
	store, err := openStore(opts)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Sync(ctx, reg)
}
