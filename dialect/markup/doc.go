// Package markup implements the JSX-like dialect plugin: `<Tag attr="v">
// children </Tag>`, fragments (`<>...</>`), and `{expr}` expression
// containers, all parsed as ordinary expressions since `<` never otherwise
// starts one.
package markup
