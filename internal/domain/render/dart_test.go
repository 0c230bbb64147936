package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corey/glyphgen/internal/domain/manifest"
)

func icons() map[string]manifest.Record {
	return map[string]manifest.Record{
		"home":       {Identifier: "home", Label: "home", CodePoint: 0xe600},
		"userCircle": {Identifier: "userCircle", Label: "user-circle", CodePoint: 0xe601},
	}
}

func opts() Options {
	return Options{ClassName: "IconFont", FontFamily: "ComIcon"}
}

func TestDart_Structure(t *testing.T) {
	src := Dart(icons(), opts())

	assert.Contains(t, src, "// 2 icons from the glyph manifest.")
	assert.Contains(t, src, "import 'package:flutter/widgets.dart';")
	assert.Contains(t, src, "class IconFont {")
	assert.Contains(t, src, "IconFont._();")
	assert.Contains(t, src, "static const String fontFamily = 'ComIcon';")
	assert.Contains(t, src, "static const IconData home = IconData(0xe600, fontFamily: fontFamily);")
	assert.Contains(t, src, "static const IconData userCircle = IconData(0xe601, fontFamily: fontFamily);")
}

func TestDart_OriginalLabelComment(t *testing.T) {
	src := Dart(icons(), opts())
	assert.Contains(t, src, "/// user-circle\n  static const IconData userCircle")
}

func TestDart_IdentifierSorted(t *testing.T) {
	src := Dart(icons(), opts())
	assert.Less(t, strings.Index(src, "IconData home"), strings.Index(src, "IconData userCircle"))
}

func TestDart_ZeroPaddedCodePoint(t *testing.T) {
	src := Dart(map[string]manifest.Record{
		"a": {Identifier: "a", Label: "a", CodePoint: 10},
	}, opts())
	assert.Contains(t, src, "IconData(0x000a, fontFamily: fontFamily)")
}

func TestDart_CustomClassAndFamily(t *testing.T) {
	src := Dart(icons(), Options{ClassName: "MyIcons", FontFamily: "MyFont"})
	assert.Contains(t, src, "class MyIcons {")
	assert.Contains(t, src, "MyIcons._();")
	assert.Contains(t, src, "static const String fontFamily = 'MyFont';")
}

func TestDart_NoHelpersByDefault(t *testing.T) {
	src := Dart(icons(), opts())
	assert.NotContains(t, src, "byName")
	assert.NotContains(t, src, "List<IconData> all")
}

func TestDart_Helpers(t *testing.T) {
	o := opts()
	o.Helpers = true
	src := Dart(icons(), o)

	assert.Contains(t, src, "static const List<IconData> all = [")
	assert.Contains(t, src, "    home,\n    userCircle,\n")
	assert.Contains(t, src, "static IconData? byName(String name) {")
	assert.Contains(t, src, "case 'home':")
	assert.Contains(t, src, "case 'user-circle':")
	assert.Contains(t, src, "return userCircle;")
	assert.Contains(t, src, "default:\n        return null;")
}

func TestDart_LabelEscapedInLookup(t *testing.T) {
	o := opts()
	o.Helpers = true
	src := Dart(map[string]manifest.Record{
		"itsFine": {Identifier: "itsFine", Label: `it's $fine\`, CodePoint: 1},
	}, o)
	assert.Contains(t, src, `case 'it\'s \$fine\\':`)
}

func TestDart_Empty(t *testing.T) {
	src := Dart(nil, opts())
	assert.Contains(t, src, "// 0 icons from the glyph manifest.")
	assert.Contains(t, src, "class IconFont {")
}
