package benchmark

import (
	"context"
	"testing"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/protodump/protodump"
)

// Global payloads and descriptors shared by all benchmarks. The
// schema-less decoder sees only the payload bytes; the dynamicpb
// baselines get the matching descriptor.
var (
	simplePayload []byte
	nestedPayload []byte

	userDescriptor    protoreflect.MessageDescriptor
	runtimeDescriptor protoreflect.MessageDescriptor
)

func init() {
	setupDescriptors()
	setupPayloads()
	loadRuntimeDescriptor()
}

func setupDescriptors() {
	fileDesc := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("user.proto"),
		Package: proto.String("dumpbench"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("Address"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("street"), Number: proto.Int32(1), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(), Label: descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum()},
					{Name: proto.String("city"), Number: proto.Int32(2), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(), Label: descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum()},
				},
			},
			{
				Name: proto.String("User"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: proto.String("id"), Number: proto.Int32(1), Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(), Label: descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum()},
					{Name: proto.String("name"), Number: proto.Int32(2), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(), Label: descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum()},
					{Name: proto.String("address"), Number: proto.Int32(3), Type: descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(), TypeName: proto.String(".dumpbench.Address"), Label: descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum()},
					{Name: proto.String("tags"), Number: proto.Int32(4), Type: descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(), Label: descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()},
				},
			},
		},
	}

	files, err := protodesc.NewFiles(&descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{fileDesc},
	})
	if err != nil {
		panic("Failed to create file descriptor: " + err.Error())
	}

	fd, err := files.FindFileByPath("user.proto")
	if err != nil {
		panic("Failed to find file descriptor: " + err.Error())
	}

	userDescriptor = fd.Messages().ByName("User")
}

func setupPayloads() {
	var err error

	simplePayload, err = proto.Marshal(newUser(false))
	if err != nil {
		panic("Failed to marshal simple payload: " + err.Error())
	}

	nestedPayload, err = proto.Marshal(newUser(true))
	if err != nil {
		panic("Failed to marshal nested payload: " + err.Error())
	}
}

func newUser(includeNested bool) *dynamicpb.Message {
	m := dynamicpb.NewMessage(userDescriptor)
	rm := m.ProtoReflect()
	fields := userDescriptor.Fields()

	rm.Set(fields.ByName("id"), protoreflect.ValueOfInt32(42))
	rm.Set(fields.ByName("name"), protoreflect.ValueOfString("alice example"))

	if includeNested {
		addrDesc := fields.ByName("address").Message()
		addr := dynamicpb.NewMessage(addrDesc).ProtoReflect()
		addr.Set(addrDesc.Fields().ByName("street"), protoreflect.ValueOfString("1 main street"))
		addr.Set(addrDesc.Fields().ByName("city"), protoreflect.ValueOfString("portland"))
		rm.Set(fields.ByName("address"), protoreflect.ValueOfMessage(addr))

		tags := rm.Mutable(fields.ByName("tags")).List()
		for _, tag := range []string{"alpha", "beta", "gamma"} {
			tags.Append(protoreflect.ValueOfString(tag))
		}
	}

	return m
}

func loadRuntimeDescriptor() {
	compiler := protocompile.Compiler{
		Resolver: &protocompile.SourceResolver{
			ImportPaths: []string{"proto"},
		},
	}
	files, err := compiler.Compile(context.Background(), "user.proto")
	if err != nil {
		panic("Failed to compile proto files: " + err.Error())
	}
	runtimeDescriptor = files[0].Messages().ByName("User")
}

// ===== SIMPLE PAYLOAD BENCHMARKS =====

func BenchmarkSimple_Schemaless(b *testing.B) {
	b.ReportMetric(float64(len(simplePayload)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = protodump.Decode(simplePayload)
	}
}

func BenchmarkSimple_SchemalessText(b *testing.B) {
	b.ReportMetric(float64(len(simplePayload)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = protodump.Dump(simplePayload)
	}
}

func BenchmarkSimple_DynamicPB(b *testing.B) {
	b.ReportMetric(float64(len(simplePayload)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		msg := dynamicpb.NewMessage(userDescriptor)
		if err := proto.Unmarshal(simplePayload, msg); err != nil {
			b.Fatal(err)
		}
	}
}

// ===== NESTED PAYLOAD BENCHMARKS =====

func BenchmarkNested_Schemaless(b *testing.B) {
	b.ReportMetric(float64(len(nestedPayload)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = protodump.Decode(nestedPayload)
	}
}

func BenchmarkNested_SchemalessText(b *testing.B) {
	b.ReportMetric(float64(len(nestedPayload)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = protodump.Dump(nestedPayload)
	}
}

func BenchmarkNested_DynamicPB(b *testing.B) {
	b.ReportMetric(float64(len(nestedPayload)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		msg := dynamicpb.NewMessage(userDescriptor)
		if err := proto.Unmarshal(nestedPayload, msg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNested_RuntimeCompiled(b *testing.B) {
	b.ReportMetric(float64(len(nestedPayload)), "payload_bytes")
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		msg := dynamicpb.NewMessage(runtimeDescriptor)
		if err := proto.Unmarshal(nestedPayload, msg); err != nil {
			b.Fatal(err)
		}
	}
}
