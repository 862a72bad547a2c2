package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/midgard-sl/internal/config"
	"github.com/Faultbox/midgard-sl/internal/logger"
	"github.com/Faultbox/midgard-sl/internal/network/packets"
	"github.com/Faultbox/midgard-sl/pkg/osd"
	"github.com/Faultbox/midgard-sl/pkg/primitive"
)

var (
	errUsage     = errors.New("missing argument")
	errTruncated = errors.New("texture entry truncated")
	errShortBody = errors.New("message body too short")
)

// tool runs commands against one configuration.
type tool struct {
	cfg *config.Config
	out io.Writer
	in  io.Reader
}

// readSource returns the raw contents named by arg. "-" reads stdin.
func (t *tool) readSource(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(t.in)
	}
	return os.ReadFile(arg)
}

// readWire decodes the wire bytes given inline or on stdin.
func (t *tool) readWire(args []string) ([]byte, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("%w: <data>", errUsage)
	}

	text := args[0]
	if text == "-" {
		raw, err := io.ReadAll(t.in)
		if err != nil {
			return nil, err
		}
		text = string(raw)
	}

	switch t.cfg.Codec.InputFormat {
	case config.InputBase64:
		return base64.StdEncoding.DecodeString(strings.TrimSpace(text))
	default:
		// Whitespace is allowed between hex groups.
		return hex.DecodeString(strings.Join(strings.Fields(text), ""))
	}
}

// formatWire renders bytes in the configured input encoding so the output
// can be fed back to decode.
func (t *tool) formatWire(data []byte) string {
	if t.cfg.Codec.InputFormat == config.InputBase64 {
		return base64.StdEncoding.EncodeToString(data)
	}
	return hex.EncodeToString(data)
}

// checkTruncated logs a truncated decode and fails in strict mode.
func (t *tool) checkTruncated(te *primitive.TextureEntry, data []byte) error {
	ch, ok := te.Truncated()
	if !ok {
		return nil
	}

	logger.Named("decode").Warn("texture entry truncated",
		zap.Stringer("channel", ch),
		zap.Int("length", len(data)),
		logger.Hex("data", data))

	if t.cfg.Codec.StrictDecode {
		return fmt.Errorf("%w in %s channel", errTruncated, ch)
	}
	return nil
}

// writeTree prints a structured-data tree in the configured output format.
func (t *tool) writeTree(o osd.OSD) error {
	plain := osd.ToPlain(o)

	if t.cfg.Output.Format == config.OutputSpew {
		_, err := io.WriteString(t.out, spew.Sdump(plain))
		return err
	}

	enc := yaml.NewEncoder(t.out)
	enc.SetIndent(2)
	if err := enc.Encode(plain); err != nil {
		return err
	}
	return enc.Close()
}

func (t *tool) cmdDecode(args []string) error {
	data, err := t.readWire(args)
	if err != nil {
		return err
	}

	te := primitive.ParseTextureEntry(data)
	if err := t.checkTruncated(te, data); err != nil {
		return err
	}

	logger.Debug("decoded texture entry",
		zap.Int("bytes", len(data)),
		zap.Ints("faces", te.FaceIndices()))

	return t.writeTree(te.GetOSD())
}

func (t *tool) cmdEncode(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: <file.yaml>", errUsage)
	}

	raw, err := t.readSource(args[0])
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	tree, err := osd.FromPlain(doc)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	te, err := primitive.TextureEntryFromOSD(tree)
	if err != nil {
		return err
	}

	data := te.GetBytes()
	logger.Debug("encoded texture entry", zap.Int("bytes", len(data)))

	_, err = fmt.Fprintln(t.out, t.formatWire(data))
	return err
}

func (t *tool) cmdInfo(args []string) error {
	data, err := t.readWire(args)
	if err != nil {
		return err
	}

	prim := primitive.NewPrimitive(0, uuid.Nil)
	prim.SetTextureEntryBytes(data)
	te := prim.Textures

	if err := t.checkTruncated(te, data); err != nil {
		return err
	}

	fmt.Fprintf(t.out, "Length:    %d bytes\n", len(data))
	if !te.HasDefault() {
		fmt.Fprintln(t.out, "Default:   (none)")
	} else {
		fmt.Fprintf(t.out, "Default:   %s\n", te.DefaultTexture())
	}

	faces := te.FaceIndices()
	fmt.Fprintf(t.out, "Faces:     %d\n", len(faces))
	for _, i := range faces {
		f := te.Face(i)
		fmt.Fprintf(t.out, "  %2d  %-40s %s\n", i, f.Attributes(), f.TextureID())
	}

	if ch, ok := te.Truncated(); ok {
		fmt.Fprintf(t.out, "Truncated: in %s channel\n", ch)
	} else {
		fmt.Fprintln(t.out, "Truncated: no")
	}

	packed := prim.TextureEntryBytes()
	fmt.Fprintf(t.out, "Digest:    %016x\n", prim.TextureDigest())
	fmt.Fprintf(t.out, "Canonical: %t (%d bytes re-encoded)\n", bytes.Equal(packed, data), len(packed))
	return nil
}

func (t *tool) cmdNew(args []string) error {
	te := primitive.NewTextureEntry(t.cfg.DefaultTextureID())
	_, err := fmt.Fprintln(t.out, t.formatWire(te.GetBytes()))
	return err
}

func (t *tool) cmdImage(args []string) error {
	data, err := t.readWire(args)
	if err != nil {
		return err
	}

	msg := packets.DecodeObjectImage(data)
	if msg == nil {
		return fmt.Errorf("%w: %d bytes", errShortBody, len(data))
	}

	fmt.Fprintf(t.out, "Agent:   %s\n", msg.AgentID)
	fmt.Fprintf(t.out, "Session: %s\n", msg.SessionID)
	fmt.Fprintf(t.out, "Objects: %d\n", len(msg.Objects))

	for i := range msg.Objects {
		b := &msg.Objects[i]
		te := b.Textures()
		if err := t.checkTruncated(te, b.TextureEntry); err != nil {
			return fmt.Errorf("object %d: %w", b.ObjectLocalID, err)
		}

		fmt.Fprintf(t.out, "  [%d] local id %d, %d texture bytes, faces %v", i, b.ObjectLocalID, len(b.TextureEntry), te.FaceIndices())
		if b.MediaURL != "" {
			fmt.Fprintf(t.out, ", media %s", b.MediaURL)
		}
		fmt.Fprintln(t.out)
	}
	return nil
}
