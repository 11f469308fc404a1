package iso8583

// section identifies one of the three top-level parts of a message.
type section int

const (
	sectionMTI section = iota
	sectionHeader
	sectionBitmapData
)

// LayoutView is the sole configuration surface touching the codec core
// (spec.md §4.5): whether a header section is emitted/parsed, the
// ordering of the three sections, the bitmap transcription mode, and
// whether parse strips padding. It is a plain value, read once per
// serialize/parse call.
type LayoutView struct {
	UseHeader             bool
	MTIPosition           int
	HeaderPosition        int
	BitmapAndDataPosition int
	BitmapEncoding        BitmapEncoding
	RemovePaddingOnParse  bool
}

// DefaultLayout matches spec.md §6's default section order
// [MTI, Header?, Bitmap+Data] with a binary bitmap and no padding
// stripping.
func DefaultLayout() LayoutView {
	return LayoutView{
		UseHeader:             false,
		MTIPosition:           0,
		HeaderPosition:        1,
		BitmapAndDataPosition: 2,
		BitmapEncoding:        BitmapBinary,
		RemovePaddingOnParse:  false,
	}
}

// order returns the three sections sorted ascending by their configured
// rank, dropping the header section when UseHeader is false.
func (v LayoutView) order() []section {
	type ranked struct {
		sec  section
		rank int
	}
	all := []ranked{
		{sectionMTI, v.MTIPosition},
		{sectionBitmapData, v.BitmapAndDataPosition},
	}
	if v.UseHeader {
		all = append(all, ranked{sectionHeader, v.HeaderPosition})
	}
	// insertion sort: three items at most, stable, no need for sort.Slice
	for i := 1; i < len(all); i++ {
		for j := i; j > 0 && all[j].rank < all[j-1].rank; j-- {
			all[j], all[j-1] = all[j-1], all[j]
		}
	}
	out := make([]section, len(all))
	for i, r := range all {
		out[i] = r.sec
	}
	return out
}
