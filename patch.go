package jdom

import (
	"bytes"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/keelson/jdom/debug"
	"github.com/keelson/jdom/parse"
)

// ApplyJSONPatch applies an RFC 6902 patch to the document: the current
// content is encoded, patched and reparsed, then swapped in. On any error
// the document is left unchanged.
func (d *Document) ApplyJSONPatch(patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return err
	}
	cur, err := d.encodeCompact()
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("json patch: %d ops on %d bytes\n", len(ops), len(cur))
	}
	out, err := ops.Apply(cur)
	if err != nil {
		return err
	}
	node, err := parse.Parse(out)
	if err != nil {
		return err
	}
	d.LinkValue(node)
	return nil
}

// MergePatch applies an RFC 7386 merge patch, with the same
// encode/patch/reparse shape as ApplyJSONPatch.
func (d *Document) MergePatch(patch []byte) error {
	cur, err := d.encodeCompact()
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("merge patch: %d bytes on %d bytes\n", len(patch), len(cur))
	}
	out, err := jsonpatch.MergePatch(cur, patch)
	if err != nil {
		return err
	}
	node, err := parse.Parse(out)
	if err != nil {
		return err
	}
	d.LinkValue(node)
	return nil
}

func (d *Document) encodeCompact() ([]byte, error) {
	if d.Value() == nil {
		return nil, ErrEmptyDocument
	}
	buf := bytes.NewBuffer(nil)
	if err := d.Encode(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
