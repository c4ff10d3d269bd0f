package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tinyrange/jni"
)

// methodSig is a parsed JVM method descriptor. Each kind is the first
// character of the type: one of ZBCSIJFD for primitives, L or [ for
// references and V for void.
type methodSig struct {
	params []string
	ret    string
}

func parseMethodSig(sig string) (methodSig, error) {
	var out methodSig
	if !strings.HasPrefix(sig, "(") {
		return out, fmt.Errorf("bad signature %q: missing (", sig)
	}
	rest := sig[1:]
	for !strings.HasPrefix(rest, ")") {
		if rest == "" {
			return out, fmt.Errorf("bad signature %q: missing )", sig)
		}
		t, n, err := nextType(rest)
		if err != nil {
			return out, fmt.Errorf("bad signature %q: %w", sig, err)
		}
		out.params = append(out.params, t)
		rest = rest[n:]
	}
	rest = rest[1:]
	if rest == "V" {
		out.ret = "V"
		return out, nil
	}
	t, n, err := nextType(rest)
	if err != nil || n != len(rest) {
		return out, fmt.Errorf("bad signature %q: bad return type", sig)
	}
	out.ret = t
	return out, nil
}

// nextType returns the first field descriptor in s and its length.
func nextType(s string) (string, int, error) {
	i := 0
	for i < len(s) && s[i] == '[' {
		i++
	}
	if i == len(s) {
		return "", 0, fmt.Errorf("truncated type")
	}
	switch s[i] {
	case 'Z', 'B', 'C', 'S', 'I', 'J', 'F', 'D':
		return s[:i+1], i + 1, nil
	case 'L':
		end := strings.IndexByte(s[i:], ';')
		if end < 0 {
			return "", 0, fmt.Errorf("unterminated class type")
		}
		return s[:i+end+1], i + end + 1, nil
	default:
		return "", 0, fmt.Errorf("unknown type %q", s[i])
	}
}

// buildArgs converts command line arguments to Values for sig. Strings
// are the only reference type accepted.
func buildArgs(env jni.Env, sig methodSig, args []string) ([]jni.Value, error) {
	if len(args) != len(sig.params) {
		return nil, fmt.Errorf("method takes %d arguments, got %d", len(sig.params), len(args))
	}
	out := make([]jni.Value, len(args))
	for i, a := range args {
		v, err := parseArg(env, sig.params[i], a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseArg(env jni.Env, typ, s string) (jni.Value, error) {
	switch typ {
	case "Z":
		b, err := strconv.ParseBool(s)
		return jni.Bool(b), err
	case "B":
		n, err := strconv.ParseInt(s, 0, 8)
		return jni.Byte(int8(n)), err
	case "C":
		r := []rune(s)
		if len(r) != 1 || r[0] > 0xffff {
			return jni.Value{}, fmt.Errorf("%q is not a single char", s)
		}
		return jni.Char(uint16(r[0])), nil
	case "S":
		n, err := strconv.ParseInt(s, 0, 16)
		return jni.Short(int16(n)), err
	case "I":
		n, err := strconv.ParseInt(s, 0, 32)
		return jni.Int(int32(n)), err
	case "J":
		n, err := strconv.ParseInt(s, 0, 64)
		return jni.Long(n), err
	case "F":
		f, err := strconv.ParseFloat(s, 32)
		return jni.Float(float32(f)), err
	case "D":
		f, err := strconv.ParseFloat(s, 64)
		return jni.Double(f), err
	case "Ljava/lang/String;", "Ljava/lang/Object;", "Ljava/lang/CharSequence;":
		return jni.Obj(env.NewStringUTF(s)), nil
	default:
		return jni.Value{}, fmt.Errorf("unsupported parameter type %s", typ)
	}
}

// callStatic invokes a static method and formats its result.
func callStatic(env jni.Env, class jni.Class, method jni.MethodID, sig methodSig, args []jni.Value) (string, error) {
	var result string
	switch sig.ret {
	case "V":
		env.CallStaticVoidMethodA(class, method, args)
	case "Z":
		result = strconv.FormatBool(env.CallStaticBooleanMethodA(class, method, args))
	case "B":
		result = strconv.Itoa(int(env.CallStaticByteMethodA(class, method, args)))
	case "C":
		result = string(rune(env.CallStaticCharMethodA(class, method, args)))
	case "S":
		result = strconv.Itoa(int(env.CallStaticShortMethodA(class, method, args)))
	case "I":
		result = strconv.Itoa(int(env.CallStaticIntMethodA(class, method, args)))
	case "J":
		result = strconv.FormatInt(env.CallStaticLongMethodA(class, method, args), 10)
	case "F":
		result = strconv.FormatFloat(float64(env.CallStaticFloatMethodA(class, method, args)), 'g', -1, 32)
	case "D":
		result = strconv.FormatFloat(env.CallStaticDoubleMethodA(class, method, args), 'g', -1, 64)
	default:
		obj := env.CallStaticObjectMethodA(class, method, args)
		if !env.ExceptionCheck() {
			result = describeObject(env, obj)
			env.DeleteLocalRef(obj)
		}
	}
	if err := takeException(env); err != nil {
		return "", err
	}
	return result, nil
}

// describeObject renders obj with String.valueOf.
func describeObject(env jni.Env, obj jni.Object) string {
	if obj.IsNull() {
		return "null"
	}
	stringClass := env.FindClass("java/lang/String")
	valueOf := env.GetStaticMethodID(stringClass, "valueOf", "(Ljava/lang/Object;)Ljava/lang/String;")
	str := env.CallStaticObjectMethod1(stringClass, valueOf, jni.Obj(obj))
	defer env.DeleteLocalRef(str)
	defer env.DeleteLocalRef(stringClass)
	return env.GoString(str)
}

// takeException turns a pending Java exception into an error.
func takeException(env jni.Env) error {
	if !env.ExceptionCheck() {
		return nil
	}
	thrown := env.ExceptionOccurred()
	env.ExceptionClear()
	defer env.DeleteLocalRef(thrown)
	return fmt.Errorf("java exception: %s", describeObject(env, thrown))
}
