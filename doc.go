// Package floatexpr implements a float64 calculator for arithmetic expressions.
//
// Expressions contain decimal numbers, the binary operators + - * / ** and %,
// parentheses, and calls of one-argument functions such as cos(1 + 2). There
// are only two levels of precedence: + and - bind loosest, and the other four
// operators share the tighter level and associate left. So "2 ** 10 / 16" is
// "(2 ** 10) / 16", and "2 * 3 ** 2" is 36.
//
// Characters that aren't part of any token, like spaces, are ignored. A minus
// sign directly before a digit is part of the number, so "1-1" is the two
// numbers 1 and -1, which is an error unless parsing with AllowTrailing. Write
// "1 - 1" to subtract.
//
// Arithmetic follows IEEE 754: "1/0" is +Inf and "0/0" is NaN, not errors.
package floatexpr
