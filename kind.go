package coffeelex

import "github.com/coffeelex/coffeelex/internal/compiler/token"

// Kind is the closed enumeration of source-location and source-token tags
// (spec.md §3.1), part of the public surface per spec.md §6.
type Kind = token.Kind

const (
	Normal  = token.Normal
	Space   = token.Space
	Newline = token.Newline
	EOF     = token.EOF
	Unknown = token.Unknown

	LParen    = token.LParen
	RParen    = token.RParen
	LBrace    = token.LBrace
	RBrace    = token.RBrace
	LBracket  = token.LBracket
	RBracket  = token.RBracket
	Comma     = token.Comma
	Colon     = token.Colon
	Semicolon = token.Semicolon
	Dot       = token.Dot
	At        = token.At
	Range     = token.Range

	CallStart = token.CallStart
	CallEnd   = token.CallEnd

	Number     = token.Number
	Bool       = token.Bool
	Null       = token.Null
	Undefined  = token.Undefined
	Identifier = token.Identifier

	Operator     = token.Operator
	Increment    = token.Increment
	Decrement    = token.Decrement
	Existence    = token.Existence
	Proto        = token.Proto
	Function     = token.Function
	Relation     = token.Relation
	Continuation = token.Continuation

	If       = token.If
	Else     = token.Else
	Then     = token.Then
	For      = token.For
	Own      = token.Own
	While    = token.While
	Loop     = token.Loop
	Switch   = token.Switch
	When     = token.When
	Try      = token.Try
	Catch    = token.Catch
	Finally  = token.Finally
	Class    = token.Class
	New      = token.New
	Return   = token.Return
	Break    = token.Break
	Continue = token.Continue
	This     = token.This
	Super    = token.Super
	Delete   = token.Delete
	Do       = token.Do
	Yield        = token.Yield
	YieldFrom    = token.YieldFrom
	Throw        = token.Throw
	Extends      = token.Extends
	Import       = token.Import
	Export       = token.Export
	Default      = token.Default

	Comment         = token.Comment
	Herecomment     = token.Herecomment
	HeregexpComment = token.HeregexpComment

	SstringStart  = token.SstringStart
	SstringEnd    = token.SstringEnd
	DstringStart  = token.DstringStart
	DstringEnd    = token.DstringEnd
	TsstringStart = token.TsstringStart
	TsstringEnd   = token.TsstringEnd
	TdstringStart = token.TdstringStart
	TdstringEnd   = token.TdstringEnd
	HeregexpStart = token.HeregexpStart
	HeregexpEnd   = token.HeregexpEnd
	Regexp        = token.Regexp

	StringContent       = token.StringContent
	StringPadding        = token.StringPadding
	StringLineSeparator = token.StringLineSeparator

	InterpolationStart = token.InterpolationStart
	InterpolationEnd   = token.InterpolationEnd

	JS     = token.JS
	HereJS = token.HereJS

	CSXOpenTagStart      = token.CSXOpenTagStart
	CSXOpenTagEnd        = token.CSXOpenTagEnd
	CSXSelfClosingTagEnd = token.CSXSelfClosingTagEnd
	CSXCloseTagStart     = token.CSXCloseTagStart
	CSXCloseTagEnd       = token.CSXCloseTagEnd
	CSXBody              = token.CSXBody
)

// Marker is a source-location marker (spec.md §3.2).
type Marker = token.Marker

// Token is a source token (spec.md §3.3).
type Token = token.Token
