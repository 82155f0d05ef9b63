package classfile

import (
	"encoding/binary"
)

type AttributeInfo struct {
	NameIndex uint16
	Info      []byte
	Parsed    interface{}
}

type SourceFileAttribute struct {
	SourceFileIndex uint16
}

type ExceptionsAttribute struct {
	ExceptionIndexTable []uint16
}

type SignatureAttribute struct {
	SignatureIndex uint16
}

func (a *AttributeInfo) AsSourceFile() *SourceFileAttribute {
	if sf, ok := a.Parsed.(*SourceFileAttribute); ok {
		return sf
	}
	return nil
}

func (a *AttributeInfo) AsExceptions() *ExceptionsAttribute {
	if ex, ok := a.Parsed.(*ExceptionsAttribute); ok {
		return ex
	}
	return nil
}

func (a *AttributeInfo) AsSignature() *SignatureAttribute {
	if sig, ok := a.Parsed.(*SignatureAttribute); ok {
		return sig
	}
	return nil
}

func findAttribute(attrs []AttributeInfo, cp ConstantPool, name string) *AttributeInfo {
	for i := range attrs {
		if cp.GetUtf8(attrs[i].NameIndex) == name {
			return &attrs[i]
		}
	}
	return nil
}

// signatureOf returns the generic signature stored in attrs, or "" when
// the member or class is not generic.
func signatureOf(attrs []AttributeInfo, cp ConstantPool) string {
	attr := findAttribute(attrs, cp, "Signature")
	if attr == nil {
		return ""
	}
	if sig := attr.AsSignature(); sig != nil {
		return cp.GetUtf8(sig.SignatureIndex)
	}
	return ""
}

func parseAttribute(name string, info []byte) interface{} {
	switch name {
	case "SourceFile":
		return parseSourceFileAttribute(info)
	case "Exceptions":
		return parseExceptionsAttribute(info)
	case "Signature":
		return parseSignatureAttribute(info)
	}
	return nil
}

func parseSourceFileAttribute(info []byte) *SourceFileAttribute {
	if len(info) < 2 {
		return nil
	}
	return &SourceFileAttribute{
		SourceFileIndex: binary.BigEndian.Uint16(info[0:2]),
	}
}

func parseExceptionsAttribute(info []byte) *ExceptionsAttribute {
	if len(info) < 2 {
		return nil
	}
	count := binary.BigEndian.Uint16(info[0:2])
	if len(info) < 2+int(count)*2 {
		return nil
	}

	ex := &ExceptionsAttribute{
		ExceptionIndexTable: make([]uint16, count),
	}

	offset := 2
	for i := uint16(0); i < count; i++ {
		ex.ExceptionIndexTable[i] = binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2
	}

	return ex
}

func parseSignatureAttribute(info []byte) *SignatureAttribute {
	if len(info) < 2 {
		return nil
	}
	return &SignatureAttribute{
		SignatureIndex: binary.BigEndian.Uint16(info[0:2]),
	}
}
