package scan

import (
	"fmt"
	"io"

	"github.com/scorix/grib2/bitmap"
	"github.com/scorix/grib2/section"
	"github.com/scorix/grib2/spec"
)

// Scanner reads sections sequentially from an io.Reader and assembles them
// into spec.Message values, honoring the three levels of section repetition
// (2-7, 3-7, 4-7) the format allows within one message.
type Scanner struct {
	r        *section.Reader
	messages []spec.Message
	infos    []MessageInfo
	err      error
	done     bool
}

// NewScanner wraps r for sequential section-by-section scanning.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: section.NewReader(r)}
}

// Err returns the first error encountered while scanning, or nil if none (or
// none yet, if scanning hasn't run to completion).
func (s *Scanner) Err() error { return s.err }

// Messages returns every complete message in the stream, scanning the whole
// stream on first call and caching the result.
func (s *Scanner) Messages() ([]spec.Message, []MessageInfo, error) {
	if !s.done {
		s.scanAll()
	}
	return s.messages, s.infos, s.err
}

func (s *Scanner) scanAll() {
	defer func() { s.done = true }()

	var (
		cur          *spec.Message
		local        *spec.LocalBlock
		grid         *spec.GridBlock
		field        *spec.DataField
		sections     []section.Section
		bitmapRes    bitmap.Resolver
		streamOffset int64
		msgOffset    int64
	)

	finalizeField := func() {
		if grid != nil && field != nil {
			grid.Fields = append(grid.Fields, *field)
			field = nil
		}
	}
	finalizeGrid := func() {
		finalizeField()
		if local != nil && grid != nil {
			local.Grids = append(local.Grids, *grid)
			grid = nil
		}
	}
	finalizeLocal := func() {
		finalizeGrid()
		if cur != nil && local != nil {
			cur.Blocks = append(cur.Blocks, *local)
			local = nil
		}
	}

	for {
		sec, err := s.r.ReadSection()
		if err != nil {
			if err == io.EOF {
				return
			}
			s.err = fmt.Errorf("scan: reading section: %w", err)
			return
		}

		switch sec.SectionNumber() {
		case 0:
			sec0, ok := sec.(section.Section0)
			if !ok {
				s.err = fmt.Errorf("scan: section 0 has wrong concrete type")
				return
			}
			cur = &spec.Message{Indicator: sec0}
			local, grid, field = nil, nil, nil
			sections = nil
			msgOffset = streamOffset
			bitmapRes = bitmap.Resolver{}

		case 1:
			if sec1, ok := sec.(section.Section1); ok && cur != nil {
				cur.Identification = sec1
			}

		case 2:
			finalizeLocal()
			local = &spec.LocalBlock{}
			if sec2, ok := sec.(section.Section2); ok {
				local.LocalUse = sec2
			}

		case 3:
			if local == nil {
				local = &spec.LocalBlock{}
			}
			finalizeGrid()
			if sec3, ok := sec.(section.Section3); ok {
				grid = &spec.GridBlock{GridDef: sec3}
			}

		case 4:
			if grid != nil {
				finalizeField()
				if sec4, ok := sec.(section.Section4); ok {
					field = &spec.DataField{ProductDef: sec4}
				}
			}

		case 5:
			if field != nil {
				if sec5, ok := sec.(section.Section5); ok {
					field.DataRep = sec5
				}
			}

		case 6:
			if field != nil {
				if sec6, ok := sec.(section.Section6); ok {
					resolved, err := bitmap.Resolved(&bitmapRes, sec6)
					if err != nil {
						s.err = fmt.Errorf("scan: %w", err)
						return
					}
					field.Bitmap = resolved
				}
			}

		case 7:
			if sec7, ok := sec.(section.Section7); ok {
				_ = sec7.Data() // force reading all data to advance the underlying reader
				if field != nil {
					field.Data = sec7
				}
			}

		case 8:
			if cur != nil {
				if sec8, ok := sec.(section.Section8); ok {
					finalizeLocal()
					cur.End = sec8
					sections = append(sections, sec)
					s.messages = append(s.messages, *cur)
					s.infos = append(s.infos, buildMessageInfo(len(s.infos), msgOffset, sections, cur))
					cur = nil
					streamOffset += int64(sectionByteLength(sec))
					continue
				}
			}
		}

		sections = append(sections, sec)
		streamOffset += int64(sectionByteLength(sec))
	}
}

func sectionByteLength(sec section.Section) uint32 {
	if sec.SectionNumber() == 0 {
		return 16
	}
	if sec.SectionNumber() == 8 {
		return 4
	}
	return sec.Length()
}

func buildMessageInfo(index int, startOffset int64, sections []section.Section, msg *spec.Message) MessageInfo {
	info := MessageInfo{
		Index:         index,
		Offset:        startOffset,
		Discipline:    msg.Indicator.Discipline(),
		Edition:       msg.Indicator.Edition(),
		NumDataFields: msg.NumDataFields(),
	}

	off := startOffset
	for _, sec := range sections {
		length := sectionByteLength(sec)
		info.Sections = append(info.Sections, SectionInfo{
			Number: sec.SectionNumber(),
			Offset: off,
			Length: length,
		})
		off += int64(length)
	}
	info.Length = uint32(off - startOffset)
	return info
}
