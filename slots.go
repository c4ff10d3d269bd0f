package jni

// Indexes into struct JNINativeInterface_. The first four entries are
// reserved; the variadic and va_list forms are listed for completeness but
// only the jvalue array (A) forms are ever called.
const (
	slotGetVersion                    = 4
	slotDefineClass                   = 5
	slotFindClass                     = 6
	slotFromReflectedMethod           = 7
	slotFromReflectedField            = 8
	slotToReflectedMethod             = 9
	slotGetSuperclass                 = 10
	slotIsAssignableFrom              = 11
	slotToReflectedField              = 12
	slotThrow                         = 13
	slotThrowNew                      = 14
	slotExceptionOccurred             = 15
	slotExceptionDescribe             = 16
	slotExceptionClear                = 17
	slotFatalError                    = 18
	slotPushLocalFrame                = 19
	slotPopLocalFrame                 = 20
	slotNewGlobalRef                  = 21
	slotDeleteGlobalRef               = 22
	slotDeleteLocalRef                = 23
	slotIsSameObject                  = 24
	slotNewLocalRef                   = 25
	slotEnsureLocalCapacity           = 26
	slotAllocObject                   = 27
	slotNewObject                     = 28
	slotNewObjectV                    = 29
	slotNewObjectA                    = 30
	slotGetObjectClass                = 31
	slotIsInstanceOf                  = 32
	slotGetMethodID                   = 33
	slotCallObjectMethod              = 34
	slotCallObjectMethodV             = 35
	slotCallObjectMethodA             = 36
	slotCallBooleanMethod             = 37
	slotCallBooleanMethodV            = 38
	slotCallBooleanMethodA            = 39
	slotCallByteMethod                = 40
	slotCallByteMethodV               = 41
	slotCallByteMethodA               = 42
	slotCallCharMethod                = 43
	slotCallCharMethodV               = 44
	slotCallCharMethodA               = 45
	slotCallShortMethod               = 46
	slotCallShortMethodV              = 47
	slotCallShortMethodA              = 48
	slotCallIntMethod                 = 49
	slotCallIntMethodV                = 50
	slotCallIntMethodA                = 51
	slotCallLongMethod                = 52
	slotCallLongMethodV               = 53
	slotCallLongMethodA               = 54
	slotCallFloatMethod               = 55
	slotCallFloatMethodV              = 56
	slotCallFloatMethodA              = 57
	slotCallDoubleMethod              = 58
	slotCallDoubleMethodV             = 59
	slotCallDoubleMethodA             = 60
	slotCallVoidMethod                = 61
	slotCallVoidMethodV               = 62
	slotCallVoidMethodA               = 63
	slotCallNonvirtualObjectMethod    = 64
	slotCallNonvirtualObjectMethodV   = 65
	slotCallNonvirtualObjectMethodA   = 66
	slotCallNonvirtualBooleanMethod   = 67
	slotCallNonvirtualBooleanMethodV  = 68
	slotCallNonvirtualBooleanMethodA  = 69
	slotCallNonvirtualByteMethod      = 70
	slotCallNonvirtualByteMethodV     = 71
	slotCallNonvirtualByteMethodA     = 72
	slotCallNonvirtualCharMethod      = 73
	slotCallNonvirtualCharMethodV     = 74
	slotCallNonvirtualCharMethodA     = 75
	slotCallNonvirtualShortMethod     = 76
	slotCallNonvirtualShortMethodV    = 77
	slotCallNonvirtualShortMethodA    = 78
	slotCallNonvirtualIntMethod       = 79
	slotCallNonvirtualIntMethodV      = 80
	slotCallNonvirtualIntMethodA      = 81
	slotCallNonvirtualLongMethod      = 82
	slotCallNonvirtualLongMethodV     = 83
	slotCallNonvirtualLongMethodA     = 84
	slotCallNonvirtualFloatMethod     = 85
	slotCallNonvirtualFloatMethodV    = 86
	slotCallNonvirtualFloatMethodA    = 87
	slotCallNonvirtualDoubleMethod    = 88
	slotCallNonvirtualDoubleMethodV   = 89
	slotCallNonvirtualDoubleMethodA   = 90
	slotCallNonvirtualVoidMethod      = 91
	slotCallNonvirtualVoidMethodV     = 92
	slotCallNonvirtualVoidMethodA     = 93
	slotGetFieldID                    = 94
	slotGetObjectField                = 95
	slotGetBooleanField               = 96
	slotGetByteField                  = 97
	slotGetCharField                  = 98
	slotGetShortField                 = 99
	slotGetIntField                   = 100
	slotGetLongField                  = 101
	slotGetFloatField                 = 102
	slotGetDoubleField                = 103
	slotSetObjectField                = 104
	slotSetBooleanField               = 105
	slotSetByteField                  = 106
	slotSetCharField                  = 107
	slotSetShortField                 = 108
	slotSetIntField                   = 109
	slotSetLongField                  = 110
	slotSetFloatField                 = 111
	slotSetDoubleField                = 112
	slotGetStaticMethodID             = 113
	slotCallStaticObjectMethod        = 114
	slotCallStaticObjectMethodV       = 115
	slotCallStaticObjectMethodA       = 116
	slotCallStaticBooleanMethod       = 117
	slotCallStaticBooleanMethodV      = 118
	slotCallStaticBooleanMethodA      = 119
	slotCallStaticByteMethod          = 120
	slotCallStaticByteMethodV         = 121
	slotCallStaticByteMethodA         = 122
	slotCallStaticCharMethod          = 123
	slotCallStaticCharMethodV         = 124
	slotCallStaticCharMethodA         = 125
	slotCallStaticShortMethod         = 126
	slotCallStaticShortMethodV        = 127
	slotCallStaticShortMethodA        = 128
	slotCallStaticIntMethod           = 129
	slotCallStaticIntMethodV          = 130
	slotCallStaticIntMethodA          = 131
	slotCallStaticLongMethod          = 132
	slotCallStaticLongMethodV         = 133
	slotCallStaticLongMethodA         = 134
	slotCallStaticFloatMethod         = 135
	slotCallStaticFloatMethodV        = 136
	slotCallStaticFloatMethodA        = 137
	slotCallStaticDoubleMethod        = 138
	slotCallStaticDoubleMethodV       = 139
	slotCallStaticDoubleMethodA       = 140
	slotCallStaticVoidMethod          = 141
	slotCallStaticVoidMethodV         = 142
	slotCallStaticVoidMethodA         = 143
	slotGetStaticFieldID              = 144
	slotGetStaticObjectField          = 145
	slotGetStaticBooleanField         = 146
	slotGetStaticByteField            = 147
	slotGetStaticCharField            = 148
	slotGetStaticShortField           = 149
	slotGetStaticIntField             = 150
	slotGetStaticLongField            = 151
	slotGetStaticFloatField           = 152
	slotGetStaticDoubleField          = 153
	slotSetStaticObjectField          = 154
	slotSetStaticBooleanField         = 155
	slotSetStaticByteField            = 156
	slotSetStaticCharField            = 157
	slotSetStaticShortField           = 158
	slotSetStaticIntField             = 159
	slotSetStaticLongField            = 160
	slotSetStaticFloatField           = 161
	slotSetStaticDoubleField          = 162
	slotNewString                     = 163
	slotGetStringLength               = 164
	slotGetStringChars                = 165
	slotReleaseStringChars            = 166
	slotNewStringUTF                  = 167
	slotGetStringUTFLength            = 168
	slotGetStringUTFChars             = 169
	slotReleaseStringUTFChars         = 170
	slotGetArrayLength                = 171
	slotNewObjectArray                = 172
	slotGetObjectArrayElement         = 173
	slotSetObjectArrayElement         = 174
	slotNewBooleanArray               = 175
	slotNewByteArray                  = 176
	slotNewCharArray                  = 177
	slotNewShortArray                 = 178
	slotNewIntArray                   = 179
	slotNewLongArray                  = 180
	slotNewFloatArray                 = 181
	slotNewDoubleArray                = 182
	slotGetBooleanArrayElements       = 183
	slotGetByteArrayElements          = 184
	slotGetCharArrayElements          = 185
	slotGetShortArrayElements         = 186
	slotGetIntArrayElements           = 187
	slotGetLongArrayElements          = 188
	slotGetFloatArrayElements         = 189
	slotGetDoubleArrayElements        = 190
	slotReleaseBooleanArrayElements   = 191
	slotReleaseByteArrayElements      = 192
	slotReleaseCharArrayElements      = 193
	slotReleaseShortArrayElements     = 194
	slotReleaseIntArrayElements       = 195
	slotReleaseLongArrayElements      = 196
	slotReleaseFloatArrayElements     = 197
	slotReleaseDoubleArrayElements    = 198
	slotGetBooleanArrayRegion         = 199
	slotGetByteArrayRegion            = 200
	slotGetCharArrayRegion            = 201
	slotGetShortArrayRegion           = 202
	slotGetIntArrayRegion             = 203
	slotGetLongArrayRegion            = 204
	slotGetFloatArrayRegion           = 205
	slotGetDoubleArrayRegion          = 206
	slotSetBooleanArrayRegion         = 207
	slotSetByteArrayRegion            = 208
	slotSetCharArrayRegion            = 209
	slotSetShortArrayRegion           = 210
	slotSetIntArrayRegion             = 211
	slotSetLongArrayRegion            = 212
	slotSetFloatArrayRegion           = 213
	slotSetDoubleArrayRegion          = 214
	slotRegisterNatives               = 215
	slotUnregisterNatives             = 216
	slotMonitorEnter                  = 217
	slotMonitorExit                   = 218
	slotGetJavaVM                     = 219
	slotGetStringRegion               = 220
	slotGetStringUTFRegion            = 221
	slotGetPrimitiveArrayCritical     = 222
	slotReleasePrimitiveArrayCritical = 223
	slotGetStringCritical             = 224
	slotReleaseStringCritical         = 225
	slotNewWeakGlobalRef              = 226
	slotDeleteWeakGlobalRef           = 227
	slotExceptionCheck                = 228
	slotNewDirectByteBuffer           = 229
	slotGetDirectBufferAddress        = 230
	slotGetDirectBufferCapacity       = 231
	slotGetObjectRefType              = 232
	slotGetModule                     = 233
	slotIsVirtualThread               = 234
)

// Indexes into struct JNIInvokeInterface_.
const (
	vmSlotDestroyJavaVM               = 3
	vmSlotAttachCurrentThread         = 4
	vmSlotDetachCurrentThread         = 5
	vmSlotGetEnv                      = 6
	vmSlotAttachCurrentThreadAsDaemon = 7
)
