// Package prefdoc reads and writes the settings.xml preferences document.
//
// The document is a shallow tree: a root <file> element carrying the
// application name and a version, one <section> per settings group, a
// <setting name value description> leaf per scalar and a <controller> leaf
// per button mapping, holding one <button number assignment> per slot.
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<file app="Snes9x FX" version="1.3.0">
//		<section name="Video" description="Video Settings">
//			<setting name="videomode" value="0" description="Video Mode"/>
//		</section>
//	</file>
//
// # Decoding
//
// Decoding is split in two steps. Parse checks that the bytes are a
// well-formed tree and Validate checks the version; only a document that
// passes both is applied to a Settings value. Apply is a sparse overlay:
// leaves are looked up by name, first match in document order, and anything
// the document does not mention keeps its current value. Numeric values use
// the lenient parsers in this package so a damaged value reads as zero
// instead of failing the load.
//
// # Encoding
//
// Encode writes every field and mapping that exists on the target, in
// registry order, so equal settings always give identical bytes.
package prefdoc
