package docx

// Built-in Word style names. These are the styles Word defines for every
// document whether or not the styles part spells them out, so the catalog
// check in SetParagraphStyle and SetTableStyle accepts them unconditionally.
const (
	StyleNormal			= "Normal"
	StyleHeader			= "Header"
	StyleFooter			= "Footer"
	StyleHeading1			= "Heading 1"
	StyleHeading2			= "Heading 2"
	StyleHeading3			= "Heading 3"
	StyleHeading4			= "Heading 4"
	StyleHeading5			= "Heading 5"
	StyleHeading6			= "Heading 6"
	StyleHeading7			= "Heading 7"
	StyleHeading8			= "Heading 8"
	StyleHeading9			= "Heading 9"
	StyleNormalTable		= "Normal Table"
	StyleNoSpacing			= "No Spacing"
	StyleTitle			= "Title"
	StyleSubtitle			= "Subtitle"
	StyleListParagraph		= "List Paragraph"
	StyleBodyText			= "Body Text"
	StyleBodyText2			= "Body Text 2"
	StyleBodyText3			= "Body Text 3"
	StyleList			= "List"
	StyleList2			= "List 2"
	StyleList3			= "List 3"
	StyleListBullet			= "List Bullet"
	StyleListBullet2		= "List Bullet 2"
	StyleListBullet3		= "List Bullet 3"
	StyleListNumber			= "List Number"
	StyleListNumber2		= "List Number 2"
	StyleListNumber3		= "List Number 3"
	StyleListContinue		= "List Continue"
	StyleListContinue2		= "List Continue 2"
	StyleListContinue3		= "List Continue 3"
	StyleMacro			= "macro"
	StyleQuote			= "Quote"
	StyleCaption			= "Caption"
	StyleIntenseQuote		= "Intense Quote"
	StyleTOCHeading			= "TOC Heading"
	StyleTableGrid			= "Table Grid"
	StyleLightShading		= "Light Shading"
	StyleLightShadingAccent1	= "Light Shading Accent 1"
	StyleLightShadingAccent2	= "Light Shading Accent 2"
	StyleLightShadingAccent3	= "Light Shading Accent 3"
	StyleLightShadingAccent4	= "Light Shading Accent 4"
	StyleLightShadingAccent5	= "Light Shading Accent 5"
	StyleLightShadingAccent6	= "Light Shading Accent 6"
	StyleLightList			= "Light List"
	StyleLightListAccent1		= "Light List Accent 1"
	StyleLightListAccent2		= "Light List Accent 2"
	StyleLightListAccent3		= "Light List Accent 3"
	StyleLightListAccent4		= "Light List Accent 4"
	StyleLightListAccent5		= "Light List Accent 5"
	StyleLightListAccent6		= "Light List Accent 6"
	StyleLightGrid			= "Light Grid"
	StyleLightGridAccent1		= "Light Grid Accent 1"
	StyleLightGridAccent2		= "Light Grid Accent 2"
	StyleLightGridAccent3		= "Light Grid Accent 3"
	StyleLightGridAccent4		= "Light Grid Accent 4"
	StyleLightGridAccent5		= "Light Grid Accent 5"
	StyleLightGridAccent6		= "Light Grid Accent 6"
	StyleMediumShading1		= "Medium Shading 1"
	StyleMediumShading1Accent1	= "Medium Shading 1 Accent 1"
	StyleMediumShading1Accent2	= "Medium Shading 1 Accent 2"
	StyleMediumShading1Accent3	= "Medium Shading 1 Accent 3"
	StyleMediumShading1Accent4	= "Medium Shading 1 Accent 4"
	StyleMediumShading1Accent5	= "Medium Shading 1 Accent 5"
	StyleMediumShading1Accent6	= "Medium Shading 1 Accent 6"
	StyleMediumShading2		= "Medium Shading 2"
	StyleMediumShading2Accent1	= "Medium Shading 2 Accent 1"
	StyleMediumShading2Accent2	= "Medium Shading 2 Accent 2"
	StyleMediumShading2Accent3	= "Medium Shading 2 Accent 3"
	StyleMediumShading2Accent4	= "Medium Shading 2 Accent 4"
	StyleMediumShading2Accent5	= "Medium Shading 2 Accent 5"
	StyleMediumShading2Accent6	= "Medium Shading 2 Accent 6"
	StyleMediumList1		= "Medium List 1"
	StyleMediumList1Accent1		= "Medium List 1 Accent 1"
	StyleMediumList1Accent2		= "Medium List 1 Accent 2"
	StyleMediumList1Accent3		= "Medium List 1 Accent 3"
	StyleMediumList1Accent4		= "Medium List 1 Accent 4"
	StyleMediumList1Accent5		= "Medium List 1 Accent 5"
	StyleMediumList1Accent6		= "Medium List 1 Accent 6"
	StyleMediumList2		= "Medium List 2"
	StyleMediumList2Accent1		= "Medium List 2 Accent 1"
	StyleMediumList2Accent2		= "Medium List 2 Accent 2"
	StyleMediumList2Accent3		= "Medium List 2 Accent 3"
	StyleMediumList2Accent4		= "Medium List 2 Accent 4"
	StyleMediumList2Accent5		= "Medium List 2 Accent 5"
	StyleMediumList2Accent6		= "Medium List 2 Accent 6"
	StyleMediumGrid1		= "Medium Grid 1"
	StyleMediumGrid1Accent1		= "Medium Grid 1 Accent 1"
	StyleMediumGrid1Accent2		= "Medium Grid 1 Accent 2"
	StyleMediumGrid1Accent3		= "Medium Grid 1 Accent 3"
	StyleMediumGrid1Accent4		= "Medium Grid 1 Accent 4"
	StyleMediumGrid1Accent5		= "Medium Grid 1 Accent 5"
	StyleMediumGrid1Accent6		= "Medium Grid 1 Accent 6"
	StyleMediumGrid2		= "Medium Grid 2"
	StyleMediumGrid2Accent1		= "Medium Grid 2 Accent 1"
	StyleMediumGrid2Accent2		= "Medium Grid 2 Accent 2"
	StyleMediumGrid2Accent3		= "Medium Grid 2 Accent 3"
	StyleMediumGrid2Accent4		= "Medium Grid 2 Accent 4"
	StyleMediumGrid2Accent5		= "Medium Grid 2 Accent 5"
	StyleMediumGrid2Accent6		= "Medium Grid 2 Accent 6"
	StyleMediumGrid3		= "Medium Grid 3"
	StyleMediumGrid3Accent1		= "Medium Grid 3 Accent 1"
	StyleMediumGrid3Accent2		= "Medium Grid 3 Accent 2"
	StyleMediumGrid3Accent3		= "Medium Grid 3 Accent 3"
	StyleMediumGrid3Accent4		= "Medium Grid 3 Accent 4"
	StyleMediumGrid3Accent5		= "Medium Grid 3 Accent 5"
	StyleMediumGrid3Accent6		= "Medium Grid 3 Accent 6"
	StyleDarkList			= "Dark List"
	StyleDarkListAccent1		= "Dark List Accent 1"
	StyleDarkListAccent2		= "Dark List Accent 2"
	StyleDarkListAccent3		= "Dark List Accent 3"
	StyleDarkListAccent4		= "Dark List Accent 4"
	StyleDarkListAccent5		= "Dark List Accent 5"
	StyleDarkListAccent6		= "Dark List Accent 6"
	StyleColorfulShading		= "Colorful Shading"
	StyleColorfulShadingAccent1	= "Colorful Shading Accent 1"
	StyleColorfulShadingAccent2	= "Colorful Shading Accent 2"
	StyleColorfulShadingAccent3	= "Colorful Shading Accent 3"
	StyleColorfulShadingAccent4	= "Colorful Shading Accent 4"
	StyleColorfulShadingAccent5	= "Colorful Shading Accent 5"
	StyleColorfulShadingAccent6	= "Colorful Shading Accent 6"
	StyleColorfulList		= "Colorful List"
	StyleColorfulListAccent1	= "Colorful List Accent 1"
	StyleColorfulListAccent2	= "Colorful List Accent 2"
	StyleColorfulListAccent3	= "Colorful List Accent 3"
	StyleColorfulListAccent4	= "Colorful List Accent 4"
	StyleColorfulListAccent5	= "Colorful List Accent 5"
	StyleColorfulListAccent6	= "Colorful List Accent 6"
	StyleColorfulGrid		= "Colorful Grid"
	StyleColorfulGridAccent1	= "Colorful Grid Accent 1"
	StyleColorfulGridAccent2	= "Colorful Grid Accent 2"
	StyleColorfulGridAccent3	= "Colorful Grid Accent 3"
	StyleColorfulGridAccent4	= "Colorful Grid Accent 4"
	StyleColorfulGridAccent5	= "Colorful Grid Accent 5"
	StyleColorfulGridAccent6	= "Colorful Grid Accent 6"
)

// BuiltinParagraphStyles lists the paragraph-family built-in style names.
var BuiltinParagraphStyles = []string{
	"Normal",
	"Header",
	"Footer",
	"Heading 1",
	"Heading 2",
	"Heading 3",
	"Heading 4",
	"Heading 5",
	"Heading 6",
	"Heading 7",
	"Heading 8",
	"Heading 9",
	"Normal Table",
	"No Spacing",
	"Title",
	"Subtitle",
	"List Paragraph",
	"Body Text",
	"Body Text 2",
	"Body Text 3",
	"List",
	"List 2",
	"List 3",
	"List Bullet",
	"List Bullet 2",
	"List Bullet 3",
	"List Number",
	"List Number 2",
	"List Number 3",
	"List Continue",
	"List Continue 2",
	"List Continue 3",
	"macro",
	"Quote",
	"Caption",
	"Intense Quote",
	"TOC Heading",
	"Table Grid",
	"Light Shading",
	"Light Shading Accent 1",
	"Light Shading Accent 2",
	"Light Shading Accent 3",
	"Light Shading Accent 4",
	"Light Shading Accent 5",
	"Light Shading Accent 6",
	"Light List",
	"Light List Accent 1",
	"Light List Accent 2",
	"Light List Accent 3",
	"Light List Accent 4",
	"Light List Accent 5",
	"Light List Accent 6",
	"Light Grid",
	"Light Grid Accent 1",
	"Light Grid Accent 2",
	"Light Grid Accent 3",
	"Light Grid Accent 4",
	"Light Grid Accent 5",
	"Light Grid Accent 6",
	"Medium Shading 1",
	"Medium Shading 1 Accent 1",
	"Medium Shading 1 Accent 2",
	"Medium Shading 1 Accent 3",
	"Medium Shading 1 Accent 4",
	"Medium Shading 1 Accent 5",
	"Medium Shading 1 Accent 6",
	"Medium Shading 2",
	"Medium Shading 2 Accent 1",
	"Medium Shading 2 Accent 2",
	"Medium Shading 2 Accent 3",
	"Medium Shading 2 Accent 4",
	"Medium Shading 2 Accent 5",
	"Medium Shading 2 Accent 6",
	"Medium List 1",
	"Medium List 1 Accent 1",
	"Medium List 1 Accent 2",
	"Medium List 1 Accent 3",
	"Medium List 1 Accent 4",
	"Medium List 1 Accent 5",
	"Medium List 1 Accent 6",
	"Medium List 2",
	"Medium List 2 Accent 1",
	"Medium List 2 Accent 2",
	"Medium List 2 Accent 3",
	"Medium List 2 Accent 4",
	"Medium List 2 Accent 5",
	"Medium List 2 Accent 6",
	"Medium Grid 1",
	"Medium Grid 1 Accent 1",
	"Medium Grid 1 Accent 2",
	"Medium Grid 1 Accent 3",
	"Medium Grid 1 Accent 4",
	"Medium Grid 1 Accent 5",
	"Medium Grid 1 Accent 6",
	"Medium Grid 2",
	"Medium Grid 2 Accent 1",
	"Medium Grid 2 Accent 2",
	"Medium Grid 2 Accent 3",
	"Medium Grid 2 Accent 4",
	"Medium Grid 2 Accent 5",
	"Medium Grid 2 Accent 6",
	"Medium Grid 3",
	"Medium Grid 3 Accent 1",
	"Medium Grid 3 Accent 2",
	"Medium Grid 3 Accent 3",
	"Medium Grid 3 Accent 4",
	"Medium Grid 3 Accent 5",
	"Medium Grid 3 Accent 6",
	"Dark List",
	"Dark List Accent 1",
	"Dark List Accent 2",
	"Dark List Accent 3",
	"Dark List Accent 4",
	"Dark List Accent 5",
	"Dark List Accent 6",
	"Colorful Shading",
	"Colorful Shading Accent 1",
	"Colorful Shading Accent 2",
	"Colorful Shading Accent 3",
	"Colorful Shading Accent 4",
	"Colorful Shading Accent 5",
	"Colorful Shading Accent 6",
	"Colorful List",
	"Colorful List Accent 1",
	"Colorful List Accent 2",
	"Colorful List Accent 3",
	"Colorful List Accent 4",
	"Colorful List Accent 5",
	"Colorful List Accent 6",
	"Colorful Grid",
	"Colorful Grid Accent 1",
	"Colorful Grid Accent 2",
	"Colorful Grid Accent 3",
	"Colorful Grid Accent 4",
	"Colorful Grid Accent 5",
	"Colorful Grid Accent 6",
}

// BuiltinTableStyles lists the table-family built-in style names.
var BuiltinTableStyles = []string{
	"Normal Table",
	"Table Grid",
	"Light Shading",
	"Light Shading Accent 1",
	"Light Shading Accent 2",
	"Light Shading Accent 3",
	"Light Shading Accent 4",
	"Light Shading Accent 5",
	"Light Shading Accent 6",
	"Light List",
	"Light List Accent 1",
	"Light List Accent 2",
	"Light List Accent 3",
	"Light List Accent 4",
	"Light List Accent 5",
	"Light List Accent 6",
	"Light Grid",
	"Light Grid Accent 1",
	"Light Grid Accent 2",
	"Light Grid Accent 3",
	"Light Grid Accent 4",
	"Light Grid Accent 5",
	"Light Grid Accent 6",
	"Medium Shading 1",
	"Medium Shading 1 Accent 1",
	"Medium Shading 1 Accent 2",
	"Medium Shading 1 Accent 3",
	"Medium Shading 1 Accent 4",
	"Medium Shading 1 Accent 5",
	"Medium Shading 1 Accent 6",
	"Medium Shading 2",
	"Medium Shading 2 Accent 1",
	"Medium Shading 2 Accent 2",
	"Medium Shading 2 Accent 3",
	"Medium Shading 2 Accent 4",
	"Medium Shading 2 Accent 5",
	"Medium Shading 2 Accent 6",
	"Medium List 1",
	"Medium List 1 Accent 1",
	"Medium List 1 Accent 2",
	"Medium List 1 Accent 3",
	"Medium List 1 Accent 4",
	"Medium List 1 Accent 5",
	"Medium List 1 Accent 6",
	"Medium List 2",
	"Medium List 2 Accent 1",
	"Medium List 2 Accent 2",
	"Medium List 2 Accent 3",
	"Medium List 2 Accent 4",
	"Medium List 2 Accent 5",
	"Medium List 2 Accent 6",
	"Medium Grid 1",
	"Medium Grid 1 Accent 1",
	"Medium Grid 1 Accent 2",
	"Medium Grid 1 Accent 3",
	"Medium Grid 1 Accent 4",
	"Medium Grid 1 Accent 5",
	"Medium Grid 1 Accent 6",
	"Medium Grid 2",
	"Medium Grid 2 Accent 1",
	"Medium Grid 2 Accent 2",
	"Medium Grid 2 Accent 3",
	"Medium Grid 2 Accent 4",
	"Medium Grid 2 Accent 5",
	"Medium Grid 2 Accent 6",
	"Medium Grid 3",
	"Medium Grid 3 Accent 1",
	"Medium Grid 3 Accent 2",
	"Medium Grid 3 Accent 3",
	"Medium Grid 3 Accent 4",
	"Medium Grid 3 Accent 5",
	"Medium Grid 3 Accent 6",
	"Dark List",
	"Dark List Accent 1",
	"Dark List Accent 2",
	"Dark List Accent 3",
	"Dark List Accent 4",
	"Dark List Accent 5",
	"Dark List Accent 6",
	"Colorful Shading",
	"Colorful Shading Accent 1",
	"Colorful Shading Accent 2",
	"Colorful Shading Accent 3",
	"Colorful Shading Accent 4",
	"Colorful Shading Accent 5",
	"Colorful Shading Accent 6",
	"Colorful List",
	"Colorful List Accent 1",
	"Colorful List Accent 2",
	"Colorful List Accent 3",
	"Colorful List Accent 4",
	"Colorful List Accent 5",
	"Colorful List Accent 6",
	"Colorful Grid",
	"Colorful Grid Accent 1",
	"Colorful Grid Accent 2",
	"Colorful Grid Accent 3",
	"Colorful Grid Accent 4",
	"Colorful Grid Accent 5",
	"Colorful Grid Accent 6",
}

var builtinStyles = func() map[string]struct{} {
	set := make(map[string]struct{}, len(BuiltinParagraphStyles)+len(BuiltinTableStyles))
	for _, name := range BuiltinParagraphStyles {
		set[name] = struct{}{}
	}
	for _, name := range BuiltinTableStyles {
		set[name] = struct{}{}
	}
	return set
}()

// IsBuiltinStyle reports whether name is one of Word's built-in style names.
func IsBuiltinStyle(name string) bool {
	_, ok := builtinStyles[name]
	return ok
}
