package renderer

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gituser12981u2/3D-Engine/common"
	"github.com/gituser12981u2/3D-Engine/engine/render_queue"
)

// Built-in pipeline shader: one uniform block (view-projection + model), a
// plain vertex entry point, and an instanced entry point that appends a
// per-instance model matrix and color from a second vertex buffer.
const backendShaderSource = `
struct Uniforms {
    view_projection: mat4x4<f32>,
    model: mat4x4<f32>,
};
@group(0) @binding(0) var<uniform> uniforms: Uniforms;

struct VertexOut {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec4<f32>,
};

@vertex
fn vs_main(
    @location(0) position: vec3<f32>,
    @location(1) color: vec4<f32>,
) -> VertexOut {
    var out: VertexOut;
    out.position = uniforms.view_projection * uniforms.model * vec4<f32>(position, 1.0);
    out.color = color;
    return out;
}

@vertex
fn vs_instanced(
    @location(0) position: vec3<f32>,
    @location(1) color: vec4<f32>,
    @location(2) model_0: vec4<f32>,
    @location(3) model_1: vec4<f32>,
    @location(4) model_2: vec4<f32>,
    @location(5) model_3: vec4<f32>,
    @location(6) instance_color: vec4<f32>,
) -> VertexOut {
    let instance_model = mat4x4<f32>(model_0, model_1, model_2, model_3);
    var out: VertexOut;
    out.position = uniforms.view_projection * uniforms.model * instance_model * vec4<f32>(position, 1.0);
    out.color = color * instance_color;
    return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
    return in.color;
}
`

const (
	vertexStride   = 28  // 3 position + 4 color floats
	instanceStride = 80  // 16 matrix + 4 color floats
	uniformSize    = 128 // two 4x4 matrices
)

// pipelineKey caches one render pipeline per (topology, instanced) pair.
type pipelineKey struct {
	topology  wgpu.PrimitiveTopology
	instanced bool
}

type wgpuBackend struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat    *wgpu.TextureFormat
	depthTextureView *wgpu.TextureView
	presentMode      wgpu.PresentMode

	buffers BufferManager

	vertexBuffer   *wgpu.Buffer
	indexBuffer    *wgpu.Buffer
	instanceBuffer *wgpu.Buffer
	uniformBuffer  *wgpu.Buffer

	shaderModule     *wgpu.ShaderModule
	bindGroupLayout  *wgpu.BindGroupLayout
	uniformBindGroup *wgpu.BindGroup
	pipelineLayout   *wgpu.PipelineLayout
	pipelines        map[pipelineKey]*wgpu.RenderPipeline

	// Frame state held between BeginFrame and Present.
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

var _ GraphicsBackend = &wgpuBackend{}
var _ FrameBackend = &wgpuBackend{}
var _ ResizableBackend = &wgpuBackend{}

// WGPUBackendOption is a functional option for configuring a new wgpu backend.
type WGPUBackendOption func(*wgpuBackend)

// WithPresentMode sets the surface present mode which controls how frames are
// delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - WGPUBackendOption: the option to pass to NewWGPUBackend
func WithPresentMode(mode PresentMode) WGPUBackendOption {
	return func(b *wgpuBackend) {
		switch mode {
		case PresentModeVSync:
			b.presentMode = wgpu.PresentModeFifo
		case PresentModeUncapped:
			fallthrough
		default:
			b.presentMode = wgpu.PresentModeImmediate
		}
	}
}

// NewWGPUBackend creates the WebGPU backend over a platform surface. It
// acquires an adapter and device, allocates the fixed-capacity GPU buffers
// mirroring the buffer manager's staging arrays, compiles the built-in
// shader, and configures the surface for the initial size.
//
// Parameters:
//   - surfaceDescriptor: the platform-specific surface descriptor, typically from Window.SurfaceDescriptor()
//   - width, height: the initial drawable size in pixels
//   - options: optional configuration options
//
// Returns:
//   - GraphicsBackend: the new backend
//   - error: nil, or a device/shader/pipeline setup failure
func NewWGPUBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...WGPUBackendOption) (GraphicsBackend, error) {
	runtime.LockOSThread()

	b := &wgpuBackend{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		buffers:     NewBufferManager(),
		pipelines:   make(map[pipelineKey]*wgpu.RenderPipeline),
	}
	for _, option := range options {
		option(b)
	}

	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	adapter, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: b.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDeviceNotFound, err)
	}
	b.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDeviceNotFound, err)
	}
	b.device = device
	b.queue = device.GetQueue()

	if err := b.createBuffers(); err != nil {
		return nil, err
	}
	if err := b.createShaderAndLayout(); err != nil {
		return nil, err
	}

	b.Resize(width, height)
	common.Logger().Info("wgpu backend ready",
		"width", width,
		"height", height,
		"present_mode", b.presentMode)
	return b, nil
}

func (b *wgpuBackend) createBuffers() error {
	var err error
	b.vertexBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Vertex Buffer",
		Size:  uint64(MaxVertices * vertexStride),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	b.indexBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Index Buffer",
		Size:  uint64(MaxIndices * 4),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	b.instanceBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Instance Buffer",
		Size:  uint64(MaxInstances * instanceStride),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	b.uniformBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Uniform Buffer",
		Size:  uniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	return err
}

func (b *wgpuBackend) createShaderAndLayout() error {
	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Engine Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: backendShaderSource,
		},
	})
	if err != nil {
		return common.ShaderCompilationError(err.Error())
	}
	b.shaderModule = module

	b.bindGroupLayout, err = b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Uniform Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uniformSize,
				},
			},
		},
	})
	if err != nil {
		return common.PipelineCreationError(err.Error())
	}

	b.uniformBindGroup, err = b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Uniform Bind Group",
		Layout: b.bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  b.uniformBuffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return common.PipelineCreationError(err.Error())
	}

	b.pipelineLayout, err = b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Engine Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{b.bindGroupLayout},
	})
	if err != nil {
		return common.PipelineCreationError(err.Error())
	}
	return nil
}

func topologyFor(pt common.PrimitiveType) wgpu.PrimitiveTopology {
	switch pt {
	case common.PrimitivePoint:
		return wgpu.PrimitiveTopologyPointList
	case common.PrimitiveLine:
		return wgpu.PrimitiveTopologyLineList
	case common.PrimitiveLineStrip:
		return wgpu.PrimitiveTopologyLineStrip
	case common.PrimitiveTriangleStrip:
		return wgpu.PrimitiveTopologyTriangleStrip
	case common.PrimitiveTriangle:
		fallthrough
	default:
		return wgpu.PrimitiveTopologyTriangleList
	}
}

// pipelineFor returns the cached pipeline for the key, building it on first use.
func (b *wgpuBackend) pipelineFor(key pipelineKey) (*wgpu.RenderPipeline, error) {
	if p, ok := b.pipelines[key]; ok {
		return p, nil
	}

	vertexLayouts := []wgpu.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1},
			},
		},
	}
	entryPoint := "vs_main"
	if key.instanced {
		entryPoint = "vs_instanced"
		vertexLayouts = append(vertexLayouts, wgpu.VertexBufferLayout{
			ArrayStride: instanceStride,
			StepMode:    wgpu.VertexStepModeInstance,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 2},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 3},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 4},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 48, ShaderLocation: 5},
				{Format: wgpu.VertexFormatFloat32x4, Offset: 64, ShaderLocation: 6},
			},
		})
	}

	created, err := b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Engine Render Pipeline",
		Layout: b.pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     b.shaderModule,
			EntryPoint: entryPoint,
			Buffers:    vertexLayouts,
		},
		Fragment: &wgpu.FragmentState{
			Module:     b.shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *b.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  key.topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return nil, common.PipelineCreationError(err.Error())
	}

	b.pipelines[key] = created
	return created, nil
}

func (b *wgpuBackend) UpdateVertexBuffer(vertices []common.Vertex) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.buffers.UpdateVertexBuffer(vertices); err != nil {
		return err
	}
	if len(vertices) > 0 {
		b.queue.WriteBuffer(b.vertexBuffer, 0, common.SliceToBytes(vertices))
	}
	return nil
}

func (b *wgpuBackend) UpdateIndexBuffer(indices []uint32) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.buffers.UpdateIndexBuffer(indices); err != nil {
		return err
	}
	if len(indices) > 0 {
		b.queue.WriteBuffer(b.indexBuffer, 0, common.SliceToBytes(indices))
	}
	return nil
}

func (b *wgpuBackend) UpdateUniformBuffer(viewProjection, model [16]float32) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buffers.UpdateUniformBuffer(viewProjection, model)
	u := b.buffers.Uniforms()
	b.queue.WriteBuffer(b.uniformBuffer, 0, common.StructToBytes(&u))
	return nil
}

func (b *wgpuBackend) UpdateInstanceBuffer(instances []render_queue.InstanceData) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.buffers.UpdateInstanceBuffer(instances); err != nil {
		return err
	}
	if len(instances) > 0 {
		b.queue.WriteBuffer(b.instanceBuffer, 0, common.SliceToBytes(instances))
	}
	return nil
}

func (b *wgpuBackend) Draw(cmd BackendDrawCommand) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return common.DrawError("no active frame")
	}

	instanced := cmd.Kind == DrawInstanced || cmd.Kind == DrawIndexedInstanced
	p, err := b.pipelineFor(pipelineKey{
		topology:  topologyFor(cmd.PrimitiveType),
		instanced: instanced,
	})
	if err != nil {
		return err
	}

	b.framePass.SetPipeline(p)
	b.framePass.SetBindGroup(0, b.uniformBindGroup, nil)
	b.framePass.SetVertexBuffer(0, b.vertexBuffer, 0, wgpu.WholeSize)
	if instanced {
		b.framePass.SetVertexBuffer(1, b.instanceBuffer, 0, wgpu.WholeSize)
	}

	switch cmd.Kind {
	case DrawBasic:
		b.framePass.Draw(uint32(cmd.VertexCount), 1, uint32(cmd.VertexStart), 0)
	case DrawInstanced:
		b.framePass.Draw(uint32(cmd.VertexCount), uint32(cmd.InstanceCount), uint32(cmd.VertexStart), 0)
	case DrawIndexed:
		b.framePass.SetIndexBuffer(b.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		b.framePass.DrawIndexed(uint32(cmd.IndexCount), 1, uint32(cmd.IndexBufferOffset), 0, 0)
	case DrawIndexedInstanced:
		b.framePass.SetIndexBuffer(b.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
		b.framePass.DrawIndexed(uint32(cmd.IndexCount), uint32(cmd.InstanceCount), uint32(cmd.IndexBufferOffset), 0, 0)
	}
	return nil
}

func (b *wgpuBackend) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if width <= 0 || height <= 0 {
		return
	}

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	// Depth reallocation is idempotent: same size keeps the current texture.
	if !b.buffers.EnsureDepthSize(width, height) && b.depthTextureView != nil {
		return
	}
	if b.depthTextureView != nil {
		b.depthTextureView.Release()
	}

	depthTexture, err := b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		common.Logger().Error("depth texture creation failed", "err", err)
		return
	}
	b.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		common.Logger().Error("depth texture view creation failed", "err", err)
	}
}

func (b *wgpuBackend) BeginFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Guard against overlapping frames; acquiring a second surface image
	// before presenting the first trips wgpu validation.
	if b.frameSurface != nil {
		return common.DrawError("previous frame surface not yet presented")
	}

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return common.DrawError(err.Error())
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return common.DrawError(err.Error())
	}

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return common.DrawError(err.Error())
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    view,
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: 0.1, G: 0.1, B: 0.1, A: 1.0,
				},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            b.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})

	b.frameEncoder = encoder
	b.framePass = pass
	b.frameSurface = surfaceTexture
	b.frameView = view
	return nil
}

func (b *wgpuBackend) EndFrame() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.framePass == nil {
		return
	}

	b.framePass.End()
	b.framePass = nil

	commandBuffer, err := b.frameEncoder.Finish(nil)
	if err != nil {
		b.frameEncoder.Release()
		b.frameEncoder = nil
		return
	}

	b.queue.Submit(commandBuffer)
	commandBuffer.Release()
	b.frameEncoder.Release()
	b.frameEncoder = nil
}

func (b *wgpuBackend) Present() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.frameSurface == nil {
		return
	}

	b.surface.Present()

	if b.frameView != nil {
		b.frameView.Release()
		b.frameView = nil
	}
	b.frameSurface.Release()
	b.frameSurface = nil
}
