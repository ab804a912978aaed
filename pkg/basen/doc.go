// Package basen converts numerals between bases 2 to 62 and encodes integers
// as bijective base-26 letter sequences.
//
// Convert works on digit strings of any length. Digits are 0-9, then a-z,
// then A-Z, so case matters above base 36:
//
//	basen.Convert("ff", 16, 10, 1) // "255", nil
//	basen.Convert("255", 10, 62, 4) // "0047", nil
//
// NumericToAlpha and AlphaToNumeric implement spreadsheet style column names
// where "a" is 0, "z" is 25 and "aa" is 26:
//
//	basen.NumericToAlpha(701)  // "zz", nil
//	basen.AlphaToNumeric("aaa") // 702, nil
package basen
