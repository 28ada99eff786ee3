// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audfmt"
	"github.com/ik5/audfmt/audio"
	"github.com/ik5/audfmt/convert"
	"github.com/ik5/audfmt/formats/aiff"
	"github.com/ik5/audfmt/riff"
)

type chunkReport struct {
	ID        string `json:"id"`
	Offset    int64  `json:"offset"`
	Size      int64  `json:"size"`
	Extended  bool   `json:"extended,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`
}

type containerReport struct {
	Signature string        `json:"signature"`
	Form      string        `json:"form"`
	Order     string        `json:"order"`
	Size      int64         `json:"size"`
	Truncated bool          `json:"truncated,omitempty"`
	Chunks    []chunkReport `json:"chunks"`
}

// attributeReport keeps the attribute bag order, a JSON object would not.
type attributeReport struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type report struct {
	File       string            `json:"file"`
	Format     string            `json:"format"`
	Container  *containerReport  `json:"container,omitempty"`
	Attributes []attributeReport `json:"attributes"`
	Wave       string            `json:"wave,omitempty"`
}

type printer struct {
	cfg *config
	log logrus.FieldLogger
	reg *audio.Registry
	out io.Writer
}

func newPrinter(cfg *config, log logrus.FieldLogger, out io.Writer) *printer {
	return &printer{
		cfg: cfg,
		log: log,
		reg: audfmt.NewRegistry(),
		out: out,
	}
}

func (p *printer) describe(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rep, err := p.inspect(path, f)
	if err != nil {
		return err
	}

	if p.cfg.json {
		return json.NewEncoder(p.out).Encode(rep)
	}
	printText(p.out, rep)
	return nil
}

func (p *printer) inspect(path string, rs io.ReadSeeker) (*report, error) {
	name := p.cfg.format
	if name == "" {
		var err error
		if name, err = audfmt.Detect(rs); err != nil {
			ext, ok := audfmt.FormatForPath(path)
			if !ok {
				return nil, err
			}
			p.log.WithField("file", path).Debug("audfmt: unknown magic, using file extension")
			name = ext
		}
	}
	log := p.log.WithFields(logrus.Fields{"file": path, "format": name})
	log.Debug("audfmt: probing")

	rep := &report{File: path, Format: name}

	var h *riff.Header
	var err error
	switch name {
	case audfmt.FormatWAV:
		h, err = riff.NewReader(rs, riff.WithLogger(log)).ReadHeader()
	case audfmt.FormatAIFF:
		h, err = aiff.Chunks(rs, riff.WithLogger(log))
	}
	if err != nil {
		return nil, err
	}
	if h != nil {
		rep.Container = container(h)
		if _, err := rs.Seek(h.Start, io.SeekStart); err != nil {
			return nil, err
		}
	}

	af, err := p.reg.Probe(name, rs)
	if err != nil {
		return nil, err
	}
	rep.Attributes = make([]attributeReport, 0, af.Len())
	for k, v := range af.All() {
		rep.Attributes = append(rep.Attributes, attributeReport{Key: string(k), Value: fmt.Sprint(v)})
	}
	if wf, ok := convert.TryToWave(af); ok {
		rep.Wave = wf.String()
	}
	return rep, nil
}

func container(h *riff.Header) *containerReport {
	c := &containerReport{
		Signature: h.Signature.String(),
		Form:      h.Form.String(),
		Order:     h.Order.String(),
		Size:      h.Size,
		Truncated: h.Truncated,
		Chunks:    make([]chunkReport, 0, len(h.Chunks)),
	}
	for _, ch := range h.Chunks {
		c.Chunks = append(c.Chunks, chunkReport{
			ID:        ch.ID.String(),
			Offset:    ch.Start,
			Size:      ch.Size,
			Extended:  ch.Extended,
			Truncated: ch.Truncated,
		})
	}
	return c
}

func printText(w io.Writer, rep *report) {
	fmt.Fprintf(w, "%s: %s\n", rep.File, rep.Format)
	if c := rep.Container; c != nil {
		fmt.Fprintf(w, "  %s/%s %s-endian size=%d", c.Signature, c.Form, c.Order, c.Size)
		if c.Truncated {
			fmt.Fprint(w, " (truncated)")
		}
		fmt.Fprintln(w)
		for _, ch := range c.Chunks {
			fmt.Fprintf(w, "  %-4s @%-8d %d", ch.ID, ch.Offset, ch.Size)
			if ch.Extended {
				fmt.Fprint(w, " (ds64)")
			}
			if ch.Truncated {
				fmt.Fprint(w, " (truncated)")
			}
			fmt.Fprintln(w)
		}
	}
	for _, a := range rep.Attributes {
		fmt.Fprintf(w, "  %-16s %s\n", a.Key, a.Value)
	}
	if rep.Wave != "" {
		fmt.Fprintf(w, "  wave: %s\n", rep.Wave)
	}
}
