package types

import (
	"strings"
)

type SwCalibrationAccess string

const (
	CalibrationAccessNotAccessible SwCalibrationAccess = "NOT-ACCESSIBLE"
	CalibrationAccessReadOnly      SwCalibrationAccess = "READ-ONLY"
	CalibrationAccessReadWrite     SwCalibrationAccess = "READ-WRITE"
)

type SwImplPolicy string

const (
	ImplPolicyConst            SwImplPolicy = "CONST"
	ImplPolicyFixed            SwImplPolicy = "FIXED"
	ImplPolicyMeasurementPoint SwImplPolicy = "MEASUREMENT-POINT"
	ImplPolicyQueued           SwImplPolicy = "QUEUED"
	ImplPolicyStandard         SwImplPolicy = "STANDARD"
)

type ArraySizeHandling string

const (
	ArraySizeHandlingAllIndicesDifferent ArraySizeHandling = "ALL-INDICES-DIFFERENT-ARRAY-SIZE"
	ArraySizeHandlingAllIndicesSame      ArraySizeHandling = "ALL-INDICES-SAME-ARRAY-SIZE"
	ArraySizeHandlingInherited           ArraySizeHandling = "INHERITED-FROM-ARRAY-ELEMENT-TYPE-SIZE"
)

type ArraySizeSemantics string

const (
	ArraySizeFixed    ArraySizeSemantics = "FIXED-SIZE"
	ArraySizeVariable ArraySizeSemantics = "VARIABLE-SIZE"
)

type ArrayImplPolicy string

const (
	ArrayImplPayloadAsArray          ArrayImplPolicy = "PAYLOAD-AS-ARRAY"
	ArrayImplPayloadAsPointerToArray ArrayImplPolicy = "PAYLOAD-AS-POINTER-TO-ARRAY"
)

type ByteOrder string

const (
	ByteOrderMostSignificantFirst ByteOrder = "MOST-SIGNIFICANT-BYTE-FIRST"
	ByteOrderMostSignificantLast  ByteOrder = "MOST-SIGNIFICANT-BYTE-LAST"
	ByteOrderOpaque               ByteOrder = "OPAQUE"
)

type IntervalType string

const (
	IntervalClosed   IntervalType = "CLOSED"
	IntervalOpen     IntervalType = "OPEN"
	IntervalInfinite IntervalType = "INFINITE"
)

type ArgumentDirection string

const (
	DirectionIn    ArgumentDirection = "IN"
	DirectionInOut ArgumentDirection = "INOUT"
	DirectionOut   ArgumentDirection = "OUT"
)

type ServerArgumentImplPolicy string

const (
	ServerArgumentUseArgumentType  ServerArgumentImplPolicy = "USE-ARGUMENT-TYPE"
	ServerArgumentUseArrayBaseType ServerArgumentImplPolicy = "USE-ARRAY-BASE-TYPE"
	ServerArgumentUseVoid          ServerArgumentImplPolicy = "USE-VOID"
)

type DataFilterType string

const (
	FilterAlways                    DataFilterType = "ALWAYS"
	FilterMaskedNewDiffersMaskedOld DataFilterType = "MASKED-NEW-DIFFERS-MASKED-OLD"
	FilterMaskedNewDiffersX         DataFilterType = "MASKED-NEW-DIFFERS-X"
	FilterMaskedNewEqualsX          DataFilterType = "MASKED-NEW-EQUALS-X"
	FilterNever                     DataFilterType = "NEVER"
	FilterNewIsOutside              DataFilterType = "NEW-IS-OUTSIDE"
	FilterNewIsWithin               DataFilterType = "NEW-IS-WITHIN"
	FilterOneEveryN                 DataFilterType = "ONE-EVERY-N"
)

var (
	calibrationAccessValues = []SwCalibrationAccess{
		CalibrationAccessNotAccessible, CalibrationAccessReadOnly, CalibrationAccessReadWrite,
	}
	implPolicyValues = []SwImplPolicy{
		ImplPolicyConst, ImplPolicyFixed, ImplPolicyMeasurementPoint, ImplPolicyQueued, ImplPolicyStandard,
	}
	arraySizeHandlingValues = []ArraySizeHandling{
		ArraySizeHandlingAllIndicesDifferent, ArraySizeHandlingAllIndicesSame, ArraySizeHandlingInherited,
	}
	arraySizeSemanticsValues = []ArraySizeSemantics{ArraySizeFixed, ArraySizeVariable}
	arrayImplPolicyValues    = []ArrayImplPolicy{ArrayImplPayloadAsArray, ArrayImplPayloadAsPointerToArray}
	byteOrderValues          = []ByteOrder{
		ByteOrderMostSignificantFirst, ByteOrderMostSignificantLast, ByteOrderOpaque,
	}
	intervalTypeValues      = []IntervalType{IntervalClosed, IntervalOpen, IntervalInfinite}
	argumentDirectionValues = []ArgumentDirection{DirectionIn, DirectionInOut, DirectionOut}
	serverArgumentValues    = []ServerArgumentImplPolicy{
		ServerArgumentUseArgumentType, ServerArgumentUseArrayBaseType, ServerArgumentUseVoid,
	}
	dataFilterTypeValues = []DataFilterType{
		FilterAlways, FilterMaskedNewDiffersMaskedOld, FilterMaskedNewDiffersX, FilterMaskedNewEqualsX,
		FilterNever, FilterNewIsOutside, FilterNewIsWithin, FilterOneEveryN,
	}
)

func parseEnum[T ~string](text string, values []T, name string) (T, error) {
	for _, value := range values {
		if string(value) == text {
			return value, nil
		}
	}
	names := make([]string, 0, len(values))
	for _, value := range values {
		names = append(names, string(value))
	}
	return "", invalidArgument("invalid %s %q (expected one of %s)", name, text, strings.Join(names, ", "))
}

func ParseSwCalibrationAccess(text string) (SwCalibrationAccess, error) {
	return parseEnum(text, calibrationAccessValues, "sw calibration access")
}

func ParseSwImplPolicy(text string) (SwImplPolicy, error) {
	return parseEnum(text, implPolicyValues, "sw impl policy")
}

func ParseArraySizeHandling(text string) (ArraySizeHandling, error) {
	return parseEnum(text, arraySizeHandlingValues, "array size handling")
}

func ParseArraySizeSemantics(text string) (ArraySizeSemantics, error) {
	return parseEnum(text, arraySizeSemanticsValues, "array size semantics")
}

func ParseArrayImplPolicy(text string) (ArrayImplPolicy, error) {
	return parseEnum(text, arrayImplPolicyValues, "array impl policy")
}

func ParseByteOrder(text string) (ByteOrder, error) {
	return parseEnum(text, byteOrderValues, "byte order")
}

func ParseIntervalType(text string) (IntervalType, error) {
	return parseEnum(text, intervalTypeValues, "interval type")
}

func ParseArgumentDirection(text string) (ArgumentDirection, error) {
	return parseEnum(text, argumentDirectionValues, "argument direction")
}

func ParseServerArgumentImplPolicy(text string) (ServerArgumentImplPolicy, error) {
	return parseEnum(text, serverArgumentValues, "server argument impl policy")
}

func ParseDataFilterType(text string) (DataFilterType, error) {
	return parseEnum(text, dataFilterTypeValues, "data filter type")
}
