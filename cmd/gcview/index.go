package main

// indexHTML is filled in with the title, the viewer config and the layers.
const indexHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta http-equiv="Content-Type" content="text/html; charset=utf-8">
    <style type="text/css">
      canvas { border: 1px solid black; }
    </style>
    <script src="https://unpkg.com/zdog@1/dist/zdog.dist.js"></script>
  </head>
  <body>
    <canvas class="gcode-view" width="600" height="600"></canvas>
    <script type="text/javascript">
document.title = %s

const config = {
%s
}

const layers = [
%s
]
    </script>
    <script type="text/javascript">
let displaySize = 600;

let gcodeView = document.querySelector(".gcode-view")

let illo = new Zdog.Illustration({
  element: gcodeView,
  scale: {x: 1.0, y: -1.0, z: 1.0},
  rotate: {x: 1.1, y: 0, z: -0.3},
  zoom: config.zoom,
});

gcodeView.onwheel = function(event) {
  illo.zoom += (event.deltaY * 0.01)
  if (illo.zoom < 0.1) {
    illo.zoom = 0.1
  }
  animate()
}

let dragStartRX, dragStartRZ;
let isDragging = false;

new Zdog.Dragger({
  startElement: gcodeView,
  onDragStart: function() {
    dragStartRX = illo.rotate.x;
    dragStartRZ = illo.rotate.z;
    isDragging = true;
    animate();
  },
  onDragMove: function( pointer, moveX, moveY ) {
    illo.rotate.x = dragStartRX - ( moveY / displaySize * Zdog.TAU );
    illo.rotate.z = dragStartRZ - ( moveX / displaySize * Zdog.TAU );
  },
  onDragEnd: function () {
    isDragging = false;
  },
});

// The print, centered on the midpoint of its extrusion paths.
let print = new Zdog.Anchor({
  addTo: illo,
  translate: {x: -config.center.x, y: -config.center.y, z: -config.center.z},
})

function polyline(path, color, stroke) {
  new Zdog.Shape({
    addTo: print,
    stroke: stroke,
    color: color,
    closed: false,
    path: path,
  })
}

for (const layer of layers) {
  for (const path of layer.paths) {
    polyline(path, config.extrudeColor, config.stroke)
  }
  if (config.showTravel) {
    for (const path of layer.travel) {
      polyline(path, config.travelColor, config.stroke / 4)
    }
  }
}

function animate() {
  illo.updateRenderGraph()
  if (isDragging) {
    requestAnimationFrame(animate)
  }
}
animate();
    </script>
 </body>
</html>
`
