/*
Constant pipeline

Literal Text ->
	parse ->
Constant Value (value, bin) ->
	intern ->
Canonical Handle (value.Ctx) ->
	attach ->
IR Expression (ir) ->
	resolve ->
Runtime Representation (layout)

*/
package compiler
