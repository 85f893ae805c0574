// Package apinode defines the in-memory representation of a single declared
// API entity (C3), the scope-stack qualified-name builder (C1), and the
// type-unwrapping helper (C2) used while a translation unit is normalized
// into a tree of nodes.
package apinode

// Kind is the closed enumeration of declared-entity categories a node can
// represent. Preprocessor-directive variants are included for forward
// compatibility with a future macro-diff pass; the tree builder does not
// populate them today.
type Kind string

const (
	Namespace              Kind = "Namespace"
	Class                  Kind = "Class"
	Struct                 Kind = "Struct"
	Union                  Kind = "Union"
	Enum                   Kind = "Enum"
	Function               Kind = "Function"
	Method                 Kind = "Method"
	Field                  Kind = "Field"
	Typedef                Kind = "Typedef"
	TypeAlias              Kind = "TypeAlias"
	Parameter              Kind = "Parameter"
	TemplateParam          Kind = "TemplateParam"
	BaseClass              Kind = "BaseClass"
	Variable               Kind = "Variable"
	ReturnType             Kind = "ReturnType"
	FunctionPointer        Kind = "FunctionPointer"
	Enumerator             Kind = "Enumerator"
	Macro                  Kind = "Macro"
	ConditionalCompilation Kind = "ConditionalCompilation"
	Unknown                Kind = "Unknown"

	If         Kind = "If"
	Elif       Kind = "Elif"
	Ifdef      Kind = "Ifdef"
	Ifndef     Kind = "Ifndef"
	Else       Kind = "Else"
	Elifdef    Kind = "Elifdef"
	Elifndef   Kind = "Elifndef"
	Endif      Kind = "Endif"
	Define     Kind = "Define"
)

// Access is a declaration's access specifier.
type Access string

const (
	AccessPublic    Access = "Public"
	AccessProtected Access = "Protected"
	AccessPrivate   Access = "Private"
	AccessNone      Access = "None"
)

// Storage is a declaration's storage-class specifier.
type Storage string

const (
	StorageNone     Storage = "None"
	StorageStatic   Storage = "Static"
	StorageExtern   Storage = "Extern"
	StorageRegister Storage = "Register"
	StorageAuto     Storage = "Auto"
)

// ConstQualifier distinguishes const from constexpr, or neither.
type ConstQualifier string

const (
	ConstNone     ConstQualifier = "None"
	ConstConst    ConstQualifier = "Const"
	ConstConstExpr ConstQualifier = "ConstExpr"
)

// VirtualQualifier is a method's virtual-dispatch qualifier.
type VirtualQualifier string

const (
	VirtualNone        VirtualQualifier = "None"
	VirtualVirtual     VirtualQualifier = "Virtual"
	VirtualPureVirtual VirtualQualifier = "PureVirtual"
	VirtualOverride    VirtualQualifier = "Override"
)

// CallingConvention is drawn from a closed set of recognised conventions.
// An empty string means "unspecified" (the platform default).
type CallingConvention string

const (
	CallCDecl             CallingConvention = "CDecl"
	CallStdCall           CallingConvention = "StdCall"
	CallFastCall          CallingConvention = "FastCall"
	CallThisCall          CallingConvention = "ThisCall"
	CallVectorCall        CallingConvention = "VectorCall"
	CallPascal            CallingConvention = "Pascal"
	CallWin64             CallingConvention = "Win64"
	CallSysV              CallingConvention = "SysV"
	CallRegCall           CallingConvention = "RegCall"
	CallAAPCS             CallingConvention = "AAPCS"
	CallAAPCSVFP          CallingConvention = "AAPCS_VFP"
	CallIntelOclBicc      CallingConvention = "IntelOclBicc"
	CallSpirFunction      CallingConvention = "SpirFunction"
	CallOpenCLKernel      CallingConvention = "OpenCLKernel"
	CallSwift             CallingConvention = "Swift"
	CallSwiftAsync        CallingConvention = "SwiftAsync"
	CallPreserveMost      CallingConvention = "PreserveMost"
	CallPreserveAll       CallingConvention = "PreserveAll"
	CallAArch64VectorCall CallingConvention = "AArch64VectorCall"
	CallNone              CallingConvention = "None"
)
