package crc

import (
	"sort"
	"strings"
)

// Catalog of well-known CRC variants. Entries list the fields of Parameters
// in declaration order: Width, Polynomial, InitialValue, FinalXOR,
// ReflectInput, ReflectOutput. The check value quoted for each variant is
// the CRC of the ASCII bytes of "123456789".
var (
	// CRC4ITU is CRC-4/ITU (check 0x7).
	CRC4ITU = Parameters{4, 0x3, 0x0, 0x0, true, true}

	// CRC5EPC is CRC-5/EPC (check 0x00).
	CRC5EPC = Parameters{5, 0x09, 0x09, 0x00, false, false}

	// CRC5ITU is CRC-5/ITU (check 0x07).
	CRC5ITU = Parameters{5, 0x15, 0x00, 0x00, true, true}

	// CRC5USB is CRC-5/USB (check 0x19).
	CRC5USB = Parameters{5, 0x05, 0x1F, 0x1F, true, true}

	// CRC6CDMA2000A is CRC-6/CDMA2000-A (check 0x0D).
	CRC6CDMA2000A = Parameters{6, 0x27, 0x3F, 0x00, false, false}

	// CRC6CDMA2000B is CRC-6/CDMA2000-B (check 0x3B).
	CRC6CDMA2000B = Parameters{6, 0x07, 0x3F, 0x00, false, false}

	// CRC6ITU is CRC-6/ITU (check 0x06).
	CRC6ITU = Parameters{6, 0x03, 0x00, 0x00, true, true}

	// CRC7 is CRC-7 (check 0x75).
	CRC7 = Parameters{7, 0x09, 0x00, 0x00, false, false}

	// CRC8 is CRC-8 (check 0xF4).
	CRC8 = Parameters{8, 0x07, 0x00, 0x00, false, false}

	// CRC8EBU is CRC-8/EBU (check 0x97).
	CRC8EBU = Parameters{8, 0x1D, 0xFF, 0x00, true, true}

	// CRC8Maxim is CRC-8/MAXIM (check 0xA1).
	CRC8Maxim = Parameters{8, 0x31, 0x00, 0x00, true, true}

	// CRC8WCDMA is CRC-8/WCDMA (check 0x25).
	CRC8WCDMA = Parameters{8, 0x9B, 0x00, 0x00, true, true}

	// CRC10 is CRC-10 (check 0x199).
	CRC10 = Parameters{10, 0x233, 0x000, 0x000, false, false}

	// CRC10CDMA2000 is CRC-10/CDMA2000 (check 0x233).
	CRC10CDMA2000 = Parameters{10, 0x3D9, 0x3FF, 0x000, false, false}

	// CRC11 is CRC-11 (check 0x5A3).
	CRC11 = Parameters{11, 0x385, 0x01A, 0x000, false, false}

	// CRC12UMTS is CRC-12/UMTS, also known as CRC-12/3GPP (check 0xDAF).
	// It is the only catalog variant that reflects its output but not its input.
	CRC12UMTS = Parameters{12, 0x80F, 0x000, 0x000, false, true}

	// CRC12CDMA2000 is CRC-12/CDMA2000 (check 0xD4D).
	CRC12CDMA2000 = Parameters{12, 0xF13, 0xFFF, 0x000, false, false}

	// CRC12DECT is CRC-12/DECT (check 0xF5B).
	CRC12DECT = Parameters{12, 0x80F, 0x000, 0x000, false, false}

	// CRC13BBC is CRC-13/BBC (check 0x04FA).
	CRC13BBC = Parameters{13, 0x1CF5, 0x0000, 0x0000, false, false}

	// CRC15 is CRC-15, used by CAN (check 0x059E).
	CRC15 = Parameters{15, 0x4599, 0x0000, 0x0000, false, false}

	// CRC15MPT1327 is CRC-15/MPT1327 (check 0x2566).
	CRC15MPT1327 = Parameters{15, 0x6815, 0x0000, 0x0001, false, false}

	// CRC16Buypass is CRC-16/BUYPASS (check 0xFEE8).
	CRC16Buypass = Parameters{16, 0x8005, 0x0000, 0x0000, false, false}

	// CRC16CCITTFalse is CRC-16/CCITT-FALSE (check 0x29B1).
	CRC16CCITTFalse = Parameters{16, 0x1021, 0xFFFF, 0x0000, false, false}

	// CRC16CDMA2000 is CRC-16/CDMA2000 (check 0x4C06).
	CRC16CDMA2000 = Parameters{16, 0xC867, 0xFFFF, 0x0000, false, false}

	// CRC16DECTR is CRC-16/DECT-R (check 0x007E).
	CRC16DECTR = Parameters{16, 0x0589, 0x0000, 0x0001, false, false}

	// CRC16DECTX is CRC-16/DECT-X (check 0x007F).
	CRC16DECTX = Parameters{16, 0x0589, 0x0000, 0x0000, false, false}

	// CRC16DNP is CRC-16/DNP (check 0xEA82).
	CRC16DNP = Parameters{16, 0x3D65, 0x0000, 0xFFFF, true, true}

	// CRC16Genibus is CRC-16/GENIBUS (check 0xD64E).
	CRC16Genibus = Parameters{16, 0x1021, 0xFFFF, 0xFFFF, false, false}

	// CRC16Kermit is CRC-16/KERMIT, also known as CRC-16/CCITT (check 0x2189).
	CRC16Kermit = Parameters{16, 0x1021, 0x0000, 0x0000, true, true}

	// CRC16Maxim is CRC-16/MAXIM (check 0x44C2).
	CRC16Maxim = Parameters{16, 0x8005, 0x0000, 0xFFFF, true, true}

	// CRC16Modbus is CRC-16/MODBUS (check 0x4B37).
	CRC16Modbus = Parameters{16, 0x8005, 0xFFFF, 0x0000, true, true}

	// CRC16T10DIF is CRC-16/T10-DIF (check 0xD0DB).
	CRC16T10DIF = Parameters{16, 0x8BB7, 0x0000, 0x0000, false, false}

	// CRC16USB is CRC-16/USB (check 0xB4C8).
	CRC16USB = Parameters{16, 0x8005, 0xFFFF, 0xFFFF, true, true}

	// CRC16X25 is CRC-16/X-25 (check 0x906E).
	CRC16X25 = Parameters{16, 0x1021, 0xFFFF, 0xFFFF, true, true}

	// CRC16XModem is CRC-16/XMODEM (check 0x31C3).
	CRC16XModem = Parameters{16, 0x1021, 0x0000, 0x0000, false, false}

	// CRC17CAN is CRC-17/CAN, used by CAN FD (check 0x04F03).
	CRC17CAN = Parameters{17, 0x1685B, 0x00000, 0x00000, false, false}

	// CRC21CAN is CRC-21/CAN, used by CAN FD (check 0x0ED841).
	CRC21CAN = Parameters{21, 0x102899, 0x000000, 0x000000, false, false}

	// CRC24 is CRC-24, used by OpenPGP (check 0x21CF02).
	CRC24 = Parameters{24, 0x864CFB, 0xB704CE, 0x000000, false, false}

	// CRC24FlexRayA is CRC-24/FLEXRAY-A (check 0x7979BD).
	CRC24FlexRayA = Parameters{24, 0x5D6DCB, 0xFEDCBA, 0x000000, false, false}

	// CRC24FlexRayB is CRC-24/FLEXRAY-B (check 0x1F23B8).
	CRC24FlexRayB = Parameters{24, 0x5D6DCB, 0xABCDEF, 0x000000, false, false}

	// CRC30 is CRC-30, used by CDMA (check 0x3B3CB540).
	CRC30 = Parameters{30, 0x2030B9C7, 0x3FFFFFFF, 0x00000000, false, false}

	// CRC32 is CRC-32, used by Ethernet, gzip, zip and PNG (check 0xCBF43926).
	CRC32 = Parameters{32, 0x04C11DB7, 0xFFFFFFFF, 0xFFFFFFFF, true, true}

	// CRC32BZip2 is CRC-32/BZIP2 (check 0xFC891918).
	CRC32BZip2 = Parameters{32, 0x04C11DB7, 0xFFFFFFFF, 0xFFFFFFFF, false, false}

	// CRC32C is CRC-32/C (Castagnoli), used by iSCSI and ext4 (check 0xE3069283).
	CRC32C = Parameters{32, 0x1EDC6F41, 0xFFFFFFFF, 0xFFFFFFFF, true, true}

	// CRC32MPEG2 is CRC-32/MPEG-2 (check 0x0376E6E7).
	CRC32MPEG2 = Parameters{32, 0x04C11DB7, 0xFFFFFFFF, 0x00000000, false, false}

	// CRC32POSIX is CRC-32/POSIX, the cksum polynomial (check 0x765E7680).
	CRC32POSIX = Parameters{32, 0x04C11DB7, 0x00000000, 0xFFFFFFFF, false, false}

	// CRC32Q is CRC-32/Q (check 0x3010BF7F).
	CRC32Q = Parameters{32, 0x814141AB, 0x00000000, 0x00000000, false, false}

	// CRC40GSM is CRC-40/GSM (check 0xD4164FC646).
	CRC40GSM = Parameters{40, 0x0004820009, 0x0000000000, 0xFFFFFFFFFF, false, false}

	// CRC64 is CRC-64, the ECMA-182 polynomial in its unreflected form
	// (check 0x6C40DF5F0B497347).
	CRC64 = Parameters{64, 0x42F0E1EBA9EA3693, 0x0000000000000000, 0x0000000000000000, false, false}

	// CRC64XZ is CRC-64/XZ, the reflected ECMA-182 variant used by xz
	// (check 0x995DC9BBDF1939FA).
	CRC64XZ = Parameters{64, 0x42F0E1EBA9EA3693, 0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, true, true}
)

// algorithms maps catalog names to their parameters.
// Keys are upper case; Lookup folds case before indexing.
var algorithms = map[string]Parameters{
	"CRC-4/ITU":          CRC4ITU,
	"CRC-5/EPC":          CRC5EPC,
	"CRC-5/ITU":          CRC5ITU,
	"CRC-5/USB":          CRC5USB,
	"CRC-6/CDMA2000-A":   CRC6CDMA2000A,
	"CRC-6/CDMA2000-B":   CRC6CDMA2000B,
	"CRC-6/ITU":          CRC6ITU,
	"CRC-7":              CRC7,
	"CRC-8":              CRC8,
	"CRC-8/EBU":          CRC8EBU,
	"CRC-8/MAXIM":        CRC8Maxim,
	"CRC-8/WCDMA":        CRC8WCDMA,
	"CRC-10":             CRC10,
	"CRC-10/CDMA2000":    CRC10CDMA2000,
	"CRC-11":             CRC11,
	"CRC-12/UMTS":        CRC12UMTS,
	"CRC-12/CDMA2000":    CRC12CDMA2000,
	"CRC-12/DECT":        CRC12DECT,
	"CRC-13/BBC":         CRC13BBC,
	"CRC-15":             CRC15,
	"CRC-15/MPT1327":     CRC15MPT1327,
	"CRC-16/BUYPASS":     CRC16Buypass,
	"CRC-16/CCITT-FALSE": CRC16CCITTFalse,
	"CRC-16/CDMA2000":    CRC16CDMA2000,
	"CRC-16/DECT-R":      CRC16DECTR,
	"CRC-16/DECT-X":      CRC16DECTX,
	"CRC-16/DNP":         CRC16DNP,
	"CRC-16/GENIBUS":     CRC16Genibus,
	"CRC-16/KERMIT":      CRC16Kermit,
	"CRC-16/MAXIM":       CRC16Maxim,
	"CRC-16/MODBUS":      CRC16Modbus,
	"CRC-16/T10-DIF":     CRC16T10DIF,
	"CRC-16/USB":         CRC16USB,
	"CRC-16/X-25":        CRC16X25,
	"CRC-16/XMODEM":      CRC16XModem,
	"CRC-17/CAN":         CRC17CAN,
	"CRC-21/CAN":         CRC21CAN,
	"CRC-24":             CRC24,
	"CRC-24/FLEXRAY-A":   CRC24FlexRayA,
	"CRC-24/FLEXRAY-B":   CRC24FlexRayB,
	"CRC-30":             CRC30,
	"CRC-32":             CRC32,
	"CRC-32/BZIP2":       CRC32BZip2,
	"CRC-32/C":           CRC32C,
	"CRC-32/MPEG-2":      CRC32MPEG2,
	"CRC-32/POSIX":       CRC32POSIX,
	"CRC-32/Q":           CRC32Q,
	"CRC-40/GSM":         CRC40GSM,
	"CRC-64":             CRC64,
	"CRC-64/XZ":          CRC64XZ,
}

// Algorithms returns the names of all catalog variants in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the catalog parameters registered under name.
// Names are matched case-insensitively; the second return value reports
// whether the name is known.
func Lookup(name string) (Parameters, bool) {
	params, ok := algorithms[strings.ToUpper(name)]
	return params, ok
}
