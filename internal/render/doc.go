// Package render fills the six Makefile placeholders ($(LIB_NAME),
// $(LIB_NAME_CAPS), $(CC_COMPILER), $(CFLAGS_OPTIONS), $(MAND_FUNCTIONS),
// $(BONUS_FUNCTIONS)) of a template with caller-supplied values and writes the
// result. Substitution is literal: values are never re-expanded and any other
// $(...) reference in the template is passed through untouched.
package render
