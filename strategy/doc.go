// Package strategy implements the strategy tree and method dispatcher shared
// by every scotch engine: a small typed tree (Concat/Cond/Select/Method/Empty)
// interpreted against a problem instance by a per-problem dispatcher, driven
// by method/parameter tables.
//
// Grammar (spec.md explicitly treats exact grammar reproduction as a
// non-goal; this is a from-scratch, equivalent-power grammar):
//
//	strategy   := term (';' term)*                // Concat, left to right
//	term       := 'empty'
//	            | name ( '(' ( ident '=' value (',' ident '=' value)* )? ')' )?
//	            | 'cond' '(' expr ',' strategy (',' strategy)? ')'
//	            | 'select' '(' strategy ',' strategy ')'
//	            | '(' strategy ')'
//	expr       := orExpr
//	orExpr     := andExpr ('|' andExpr)*
//	andExpr    := cmp ('&' cmp)*
//	cmp        := '(' feature op number ')'
//	            | '(' expr ')'
//	op         := '<' | '<=' | '>' | '>=' | '=' | '!='
//
// Each Table binds method names to a MethodEntry (function + default
// parameter record) and declares, per method, the parameter descriptors
// needed to parse "name=value" pairs in a method() call. Parameter records
// are plain Go structs per method (spec.md §9's "tagged enum of parameter
// records" resolution of the original's byte-offset descriptor tables);
// ParamDescriptor.Set receives the already-allocated record and a raw
// string/float/int/sub-strategy value.
package strategy
