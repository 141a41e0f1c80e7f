/*
Package parser reads configuration files into document.Document values.

XML is the native format: the root element becomes the single top-level key,
an element with child elements becomes a nested Document and an element with
only text becomes its whitespace-trimmed text. Attributes, comments and
processing instructions are ignored. When an element repeats under the same
parent, the last occurrence wins.

	<Param>
	  <Mesh>
	    <InitialRefLevel> 3 </InitialRefLevel>
	  </Mesh>
	</Param>

decodes to

	Document{"Param": Document{"Mesh": Document{"InitialRefLevel": "3"}}}

YAML and JSON files decode to the same shape. Scalars keep their source text,
so "1.0" stays "1.0". Null values are dropped and sequences are rejected.

The format is chosen from the file extension; unknown extensions are read as
XML.
*/
package parser
